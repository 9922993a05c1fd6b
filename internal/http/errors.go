package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/domain"
)

// ErrorBody is the single error envelope every failure response uses.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	msgNotFound = "Resource not found"
	msgInternal = "Something went wrong, this has been logged. You may report errors to rnoc-lab-staff@lists.gatech.edu."
)

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorBody{Status: status, Message: message})
}

// respondError maps service errors onto the envelope. Validation errors
// carry their message to the client; storage failures stay generic so no
// query text or internals leak out.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
