package common

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotAuthenticated is returned by services when an authorized action
	// is attempted without a stored credential. No backend call is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned locally when an admin-only action is
	// attempted by a non-admin identity.
	ErrForbidden = errors.New("forbidden")

	// ErrTokenExpired reports a credential whose exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError describes a client-side validation failure. It never
// reaches the backend; views show Fields inline next to the form.
type ValidationError struct {
	Fields map[string]string
}

// Error joins field messages in a stable order.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
