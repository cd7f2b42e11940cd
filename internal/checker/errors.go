package checker

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRoom   = errors.New("unknown room id")
	ErrNotConfigured = errors.New("checker requires a notifier and a client")

	ErrTransport = errors.New("availability request failed")
	ErrStatus    = errors.New("availability endpoint returned an error status")
	ErrDecode    = errors.New("malformed availability response")
)

// StatusError carries the status code of a non-2xx availability response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d", ErrStatus, e.Code)
	}
	return fmt.Sprintf("%s: %d: %s", ErrStatus, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}
