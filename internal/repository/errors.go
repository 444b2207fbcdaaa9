package repository

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedRedirect is returned when the backend answers a data
// request with a redirect, usually to its login page
var ErrUnexpectedRedirect = errors.New("backend redirected the request")

// ErrResponseTooLarge is returned when a response body does not fit the
// client's read limit. It is not decoded, so a truncated list is never
// mistaken for a malformed one.
var ErrResponseTooLarge = errors.New("backend response exceeded size limit")

// ForbiddenError is a 403 that carried a structured error body. It is not
// a failure to log but a signal to send the user to the error page.
type ForbiddenError struct {
	Name string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Name)
}

// HTTPError is any other non-2xx answer
type HTTPError struct {
	StatusCode int
	Name       string
}

func (e *HTTPError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("HTTP error! Status: %d (%s)", e.StatusCode, e.Name)
	}
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
}

// AsForbidden unwraps a ForbiddenError from err
func AsForbidden(err error) (*ForbiddenError, bool) {
	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return forbidden, true
	}
	return nil, false
}

func statusError(status int, name string) error {
	if status == http.StatusForbidden && name != "" {
		return &ForbiddenError{Name: name}
	}
	return &HTTPError{StatusCode: status, Name: name}
}
