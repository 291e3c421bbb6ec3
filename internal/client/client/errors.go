package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotAllowed   = errors.New("not allowed")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Is makes 401 answers match ErrUnauthorized and 403 answers match
// ErrNotAllowed. Only a 401 means the credential itself was rejected.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotAllowed:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// MessageOf returns the message a user should see for err: the backend's
// message when it sent one, the field summary for a validation failure,
// otherwise fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	return fallback
}
