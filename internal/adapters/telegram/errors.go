package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrResponseTooLarge = errors.New("telegram response exceeds size limit")

// APIError is a Bot API reply with ok=false or a non-2xx status.
type APIError struct {
	Method      string
	StatusCode  int
	Code        int
	Description string
	RetryAfter  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: status %d: %s", e.Method, e.StatusCode, e.Description)
}

// Temporary reports whether repeating the call may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// NotModified reports an edit that would leave the message unchanged.
func (e *APIError) NotModified() bool {
	return e.StatusCode == http.StatusBadRequest && strings.Contains(e.Description, "message is not modified")
}

func isNotModified(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotModified()
}
