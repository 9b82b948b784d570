package tapsilat

import (
	"encoding/json"
	"fmt"

	"github.com/tapsilat/tapsilat-go/internal/httpclient"
	"github.com/tapsilat/tapsilat-go/validators"
)

// ValidationError is a local input check failure, raised before any I/O.
// It is defined in the validators package and re-exported here so callers
// can branch on every SDK error kind from one import.
type ValidationError = validators.ValidationError

// ConfigError reports an invalid client configuration, detected before any
// network call.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Message
}

// APIError reports an upstream error response (status >= 400). Message is
// extracted best-effort from the error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// ParseError reports a response body that was present but not valid JSON,
// or JSON that does not match the expected shape. Body carries the raw
// response for diagnosis.
type ParseError struct {
	Message string
	Body    string
}

func (e *ParseError) Error() string {
	if e.Body == "" {
		return "parse error: " + e.Message
	}
	return fmt.Sprintf("parse error: %s. Response was: %s", e.Message, e.Body)
}

// apiErrorFromHTTP builds an APIError from a transport-level HTTP error,
// extracting the "message" field of the JSON error body when there is one.
func apiErrorFromHTTP(httpErr *httpclient.HTTPError) *APIError {
	message := "Unknown API error"
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(httpErr.Body), &errBody); err == nil && errBody.Message != "" {
		message = errBody.Message
	}
	return &APIError{
		StatusCode: httpErr.StatusCode,
		Message:    message,
	}
}
