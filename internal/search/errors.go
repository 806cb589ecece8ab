package search

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedStatus is returned when the search service answers with a
// non-success HTTP status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError carries the HTTP status of a failed search request.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %d %s: %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Transient reports whether the status is worth retrying (429 or 5xx).
func (e *StatusError) Transient() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
