package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
)

const casSuccessBody = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
	<cas:authenticationSuccess>
		<cas:user>gburdell3</cas:user>
	</cas:authenticationSuccess>
</cas:serviceResponse>`

const casFailureBody = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
	<cas:authenticationFailure code="INVALID_TICKET">
		Ticket ST-123 not recognized
	</cas:authenticationFailure>
</cas:serviceResponse>`

func TestValidateTicket_Success(t *testing.T) {
	var gotTicket, gotService string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/serviceValidate", r.URL.Path)
		gotTicket = r.URL.Query().Get("ticket")
		gotService = r.URL.Query().Get("service")
		fmt.Fprint(w, casSuccessBody)
	}))
	defer server.Close()

	client := NewCASClient(server.URL, "http://api.example.edu/login", zap.NewNop())

	user, err := client.ValidateTicket(context.Background(), "ST-123")
	require.NoError(t, err)
	assert.Equal(t, "gburdell3", user)
	assert.Equal(t, "ST-123", gotTicket)
	assert.Equal(t, "http://api.example.edu/login", gotService)
}

func TestValidateTicket_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, casFailureBody)
	}))
	defer server.Close()

	client := NewCASClient(server.URL, "http://api.example.edu/login", zap.NewNop())

	_, err := client.ValidateTicket(context.Background(), "ST-bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestValidateTicket_MissingTicket(t *testing.T) {
	client := NewCASClient("http://cas.invalid", "http://api.example.edu/login", zap.NewNop())

	_, err := client.ValidateTicket(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoginURL_EscapesServiceURL(t *testing.T) {
	client := NewCASClient("https://sso.example.edu/cas", "http://api.example.edu/login?next=map", zap.NewNop())

	loginURL := client.LoginURL()
	assert.Equal(t,
		"https://sso.example.edu/cas/login?service=http%3A%2F%2Fapi.example.edu%2Flogin%3Fnext%3Dmap",
		loginURL)

	// the service URL must survive a query-string round trip intact
	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.edu/login?next=map", parsed.Query().Get("service"))
}
