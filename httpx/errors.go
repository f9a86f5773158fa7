package httpx

import (
	"fmt"
	"net/http"

	"github.com/geodatos/geoforms/log"
)

// NetworkError is any fetch rejection or non-OK response. Op carries a
// dotted code naming the call site ("client.fetch_submissions").
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s", e.Op, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Will log a transport-level failure and wrap it as a NetworkError
func LogTransportError(code string, err error) *NetworkError {
	log.Errorf("%s: %s", code, err)
	return &NetworkError{Op: code, Err: err}
}

// Will log a non-OK response status and wrap it as a NetworkError
func LogStatusError(code string, status int) *NetworkError {
	log.Debugf("%s: status %d", code, status)
	return &NetworkError{Op: code, Status: status}
}
