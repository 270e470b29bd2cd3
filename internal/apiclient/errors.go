package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response. Message is the server's
// error string when the body carried one.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// IsUnauthorized reports whether the API rejected the credential.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorPayload is the JSON error object the API sends on failure.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}
	var p errorPayload
	if json.Unmarshal(body, &p) == nil {
		apiErr.Message = p.Error
		if apiErr.Message == "" {
			apiErr.Message = p.Message
		}
	}
	return apiErr
}

// Message returns the human-readable text to show for err: the server's
// error string when there is one, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
