package interfaces

import (
	"errors"
	"fmt"
)

// BackendError is returned by gateway adapters when the upstream answered with a
// non-success status. Message carries the upstream's human readable detail, if any.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// BackendMessage returns the upstream message carried by err, if any.
func BackendMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message, true
	}
	return "", false
}
