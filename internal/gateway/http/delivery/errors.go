package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrNoResponse = errors.New("remote did not respond")

// StatusError is a non-2xx answer from the remote.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote responded %d", e.Code)
	}
	return fmt.Sprintf("remote responded %d: %s", e.Code, e.Body)
}

// IsTransientStatus reports whether a request answered with code may succeed later.
func IsTransientStatus(code int) bool {
	return code >= http.StatusInternalServerError ||
		code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout
}

// IsTransient reports whether err is worth retrying: no response, a timeout
// or a transient status. Cancellation of the caller is not transient.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return IsTransientStatus(statusErr.Code)
	}
	return errors.Is(err, ErrNoResponse) || errors.Is(err, context.DeadlineExceeded)
}
