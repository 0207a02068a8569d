package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrMissingToken is returned when no access token is configured and the
// OPENAI_API_KEY environment variable is not set
var ErrMissingToken = stderrors.New("openai: missing access token")

// ErrorResponse represents an error response from the OpenAI API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails holds the structured error returned by the API
type ErrorDetails struct {
	Code    *string `json:"code"`
	Message string  `json:"message"`
	Param   *string `json:"param"`
	Type    *string `json:"type"`
}

// ToError converts the ErrorResponse to a Go error
func (e ErrorResponse) ToError(statusCode int) error {
	return &APIError{
		StatusCode: statusCode,
		Code:       deref(e.Error.Code),
		Message:    e.Error.Message,
		Param:      deref(e.Error.Param),
		Type:       deref(e.Error.Type),
	}
}

// APIError represents a structured error returned by the OpenAI API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Param      string
	Type       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := fmt.Sprintf("openai error %d: %s", e.StatusCode, e.Message)
	if e.Type != "" {
		msg += " (" + e.Type + ")"
	}
	if e.Param != "" {
		msg += " [param: " + e.Param + "]"
	}
	return msg
}

// IsUnauthorized returns true if the API rejected the credentials
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsRateLimited returns true if the API reported rate limiting or exhausted quota
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError returns true for 5xx responses
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// MissingParamError is returned by request builders when a required field is not set
type MissingParamError struct {
	Request string
	Field   string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("openai: missing required parameter %q for %s", e.Field, e.Request)
}

// UnexpectedResponseError is returned when a response body matches neither
// the expected payload nor the error envelope
type UnexpectedResponseError struct {
	StatusCode int

	// Raw is the decoded JSON value, nil for an empty body
	Raw any
}

func (e *UnexpectedResponseError) Error() string {
	if e.Raw == nil {
		return fmt.Sprintf("openai: unexpected empty response (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("openai: unexpected json response (status %d): %v", e.StatusCode, e.Raw)
}

// TransportError wraps failures to build, send or read an HTTP exchange
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openai: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when a request body cannot be serialized
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("openai: failed to encode request body: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body is not valid JSON
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("openai: failed to decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err happened below the API layer: a network
// failure or a response body that could not be decoded
func IsTransport(err error) bool {
	var transportErr *TransportError
	var decodeErr *DecodeError
	return stderrors.As(err, &transportErr) || stderrors.As(err, &decodeErr)
}

// AsAPIError returns the APIError in err's chain, if any
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAPIError reports whether err carries a structured API error
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
