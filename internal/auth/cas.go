// Package auth holds the CAS ticket-validation client and the Redis-backed
// session store gating the mutating endpoints.
package auth

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
)

// CASClient validates service tickets against a CAS v2 server.
type CASClient struct {
	httpClient *resty.Client
	serverURL  string
	serviceURL string
	logger     *zap.Logger
}

func NewCASClient(serverURL, serviceURL string, logger *zap.Logger) *CASClient {
	client := resty.New().
		SetBaseURL(serverURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &CASClient{
		httpClient: client,
		serverURL:  serverURL,
		serviceURL: serviceURL,
		logger:     logger,
	}
}

// LoginURL is where unauthenticated clients are redirected to obtain a
// ticket.
func (c *CASClient) LoginURL() string {
	return c.serverURL + "/login?service=" + url.QueryEscape(c.serviceURL)
}

// casServiceResponse is the CAS protocol v2 serviceValidate payload.
type casServiceResponse struct {
	XMLName xml.Name `xml:"serviceResponse"`
	Success *struct {
		User string `xml:"user"`
	} `xml:"authenticationSuccess"`
	Failure *struct {
		Code    string `xml:"code,attr"`
		Message string `xml:",chardata"`
	} `xml:"authenticationFailure"`
}

// ValidateTicket checks a service ticket with the CAS server and returns
// the authenticated username. An invalid or expired ticket yields an error
// wrapping domain.ErrInvalidArgument.
func (c *CASClient) ValidateTicket(ctx context.Context, ticket string) (string, error) {
	if ticket == "" {
		return "", fmt.Errorf("%w: ticket is required", domain.ErrInvalidArgument)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ticket":  ticket,
			"service": c.serviceURL,
		}).
		Get("/serviceValidate")
	if err != nil {
		c.logger.Error("CAS validation request failed", zap.Error(err))
		return "", fmt.Errorf("failed to reach CAS server: %w", err)
	}

	var parsed casServiceResponse
	if err := xml.Unmarshal(resp.Body(), &parsed); err != nil {
		c.logger.Error("CAS validation response unparseable", zap.Error(err))
		return "", fmt.Errorf("failed to parse CAS response: %w", err)
	}

	if parsed.Failure != nil {
		c.logger.Info("CAS rejected ticket",
			zap.String("code", parsed.Failure.Code))
		return "", fmt.Errorf("%w: CAS rejected ticket (%s)", domain.ErrInvalidArgument, parsed.Failure.Code)
	}
	if parsed.Success == nil || parsed.Success.User == "" {
		return "", fmt.Errorf("%w: CAS response carried no user", domain.ErrInvalidArgument)
	}

	return parsed.Success.User, nil
}
