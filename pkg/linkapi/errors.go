package linkapi

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse means the body was not a JSON object.
	ErrMalformedResponse = errors.New("malformed generate-link response")
)

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generate-link API returned status %d: %s", e.StatusCode, e.Body)
}
