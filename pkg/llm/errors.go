package llm

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse means the backend answered successfully without a
// usable reply.
var ErrMalformedResponse = errors.New("llm response structure unexpected")

// StatusError is a non-200 reply. Message is the backend's own error text
// when the body carried one.
type StatusError struct {
	Provider string
	Code     int
	Message  string
	Body     string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.Code, e.Body)
}
