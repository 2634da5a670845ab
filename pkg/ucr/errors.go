package ucr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrArgumentCount = errors.New("wrong number of arguments")
	ErrInvalidScope  = errors.New("invalid scope")
	ErrUnknownRegion = errors.New("unknown region")
	ErrTransport     = errors.New("transport error")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrUnknownMethod  = errors.New("unknown method")
	ErrInvalidPage    = errors.New("page must be a non-negative integer")
	ErrDotSegment     = errors.New("path segment must not be . or ..")
)

// ArgumentCountError reports a call whose argument count is outside the
// method's declared arity.
type ArgumentCountError struct {
	Method string
	Min    int
	Max    int
	Actual int
}

// Error implements the error interface.
func (e *ArgumentCountError) Error() string {
	expected := fmt.Sprintf("%d", e.Min)
	if e.Max != e.Min {
		expected = fmt.Sprintf("%d to %d", e.Min, e.Max)
	}

	return fmt.Sprintf("%s: expected %s argument(s), got %d", e.Method, expected, e.Actual)
}

// Is matches ErrArgumentCount.
func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}

// InvalidScopeError reports a scope that is not recognized or not offered by
// the requested resource.
type InvalidScopeError struct {
	Scope    Scope
	Resource string
}

// Error implements the error interface.
func (e *InvalidScopeError) Error() string {
	if e.Resource == "" || !e.Scope.Valid() {
		return fmt.Sprintf("invalid scope %s", e.Scope)
	}

	return fmt.Sprintf("invalid scope %s for %s", e.Scope, e.Resource)
}

// Is matches ErrInvalidScope.
func (e *InvalidScopeError) Is(target error) bool {
	return target == ErrInvalidScope
}

// UnknownRegionError reports a region code or name missing from the table.
type UnknownRegionError struct {
	Code    int
	Name    string
	Numeric bool
}

// Error implements the error interface.
func (e *UnknownRegionError) Error() string {
	if e.Numeric {
		return fmt.Sprintf("unknown region code %d", e.Code)
	}

	return fmt.Sprintf("unknown region name %q", e.Name)
}

// Is matches ErrUnknownRegion.
func (e *UnknownRegionError) Is(target error) bool {
	return target == ErrUnknownRegion
}

// APIError is the error envelope returned by api.data.gov.
type APIError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Common api.data.gov error codes.
const (
	ErrorCodeAPIKeyMissing  = "API_KEY_MISSING"
	ErrorCodeAPIKeyInvalid  = "API_KEY_INVALID"
	ErrorCodeAPIKeyDisabled = "API_KEY_DISABLED"
	ErrorCodeOverRateLimit  = "OVER_RATE_LIMIT"
	ErrorCodeNotFound       = "NOT_FOUND"
)

// TransportError reports a failed network call or a non-success status.
// StatusCode is zero when no response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	API        *APIError
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	msg := e.Method + " " + e.Path

	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}

	if e.API != nil {
		msg += ": " + e.API.Error()
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ParseAPIError parses the api.data.gov error envelope.
func ParseAPIError(data []byte) (*APIError, error) {
	var envelope struct {
		Error *APIError `json:"error"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	if envelope.Error == nil {
		return nil, nil
	}

	return envelope.Error, nil
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	transportErr := &TransportError{}
	if !errors.As(err, &transportErr) {
		return false
	}

	if transportErr.API != nil && transportErr.API.Code == ErrorCodeNotFound {
		return true
	}

	return transportErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error was caused by a missing or rejected API key.
func IsUnauthorized(err error) bool {
	transportErr := &TransportError{}
	if !errors.As(err, &transportErr) {
		return false
	}

	if transportErr.API != nil && strings.HasPrefix(transportErr.API.Code, "API_KEY_") {
		return true
	}

	return transportErr.StatusCode == http.StatusUnauthorized || transportErr.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	transportErr := &TransportError{}
	if !errors.As(err, &transportErr) {
		return false
	}

	if transportErr.API != nil && transportErr.API.Code == ErrorCodeOverRateLimit {
		return true
	}

	return transportErr.StatusCode == http.StatusTooManyRequests
}
