package spotify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the Spotify API.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (status: %d)", e.Status)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// errorEnvelope is the wire shape of a regular API error:
// {"error": {"status": 404, "message": "non existing id"}}.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// DecodeError reports a response body that could not be deserialized into
// the expected schema. It carries the raw body so the failure stays
// diagnosable after the downgrade to an error value.
type DecodeError struct {
	Err  error
	Body string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying deserialization error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoAuthConfigured    = errors.New("no access token or client credentials configured")
)

// ParseAPIError interprets a failed response body. The regular error envelope
// is preferred; anything else (HTML error pages, empty bodies) degrades to
// the raw body text.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err == nil && envelope.Error.Message != "" {
		if envelope.Error.Status == 0 {
			envelope.Error.Status = statusCode
		}

		return &envelope.Error
	}

	return &APIError{Status: statusCode, Message: strings.TrimSpace(string(body))}
}

// IsNotFound checks if the error is a not found rejection.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication rejection.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization rejection.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate limit rejection. The client
// performs no rate limit handling itself; callers decide how to back off.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsDecodeFailure checks if the error is a decode failure rather than a
// transport error or remote rejection.
func IsDecodeFailure(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}
