package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds for remote calls. An *APIError matches exactly one of
// these through errors.Is.
var (
	// ErrNetwork indicates the call produced no HTTP response.
	ErrNetwork = errors.New("network error")

	// ErrAuth indicates the server rejected the credentials or token (401, 403).
	ErrAuth = errors.New("authentication rejected")

	// ErrValidation indicates the server rejected the request (other 4xx).
	ErrValidation = errors.New("request rejected")

	// ErrServer indicates a server-side failure (5xx).
	ErrServer = errors.New("server error")
)

// APIError is a failed remote call. It carries the HTTP status and
// response body so callers that need details (update failures in
// particular) can inspect them, while errors.Is against the kind
// sentinels covers everyone else.
type APIError struct {
	Kind       error  // one of ErrNetwork, ErrAuth, ErrValidation, ErrServer
	StatusCode int    // 0 when no response was received
	Body       string // response body, may be empty
	Cause      error  // underlying transport error, if any
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
		}
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v (status %d)", e.Kind, e.StatusCode)
}

func (e *APIError) Is(target error) bool { return target == e.Kind }

func (e *APIError) Unwrap() error { return e.Cause }

// NewNetworkError wraps a transport failure that produced no response.
func NewNetworkError(cause error) *APIError {
	return &APIError{Kind: ErrNetwork, Cause: cause}
}

// NewStatusError classifies a non-2xx HTTP status.
func NewStatusError(statusCode int, body string) *APIError {
	var kind error
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		kind = ErrAuth
	case statusCode >= 400 && statusCode < 500:
		kind = ErrValidation
	default:
		kind = ErrServer
	}
	return &APIError{Kind: kind, StatusCode: statusCode, Body: body}
}
