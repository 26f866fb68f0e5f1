package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call.
type Kind string

const (
	// KindTransport: the request never completed (DNS, connection, timeout, cancellation).
	KindTransport Kind = "transport"
	// KindBackendUnavailable: the server answered with an HTML page instead of JSON.
	KindBackendUnavailable Kind = "backend_unavailable"
	// KindUnauthorized: an authenticated endpoint answered 401.
	KindUnauthorized Kind = "unauthorized"
	// KindApplication: the server rejected the request.
	KindApplication Kind = "application"
	// KindMalformedResponse: a success response could not be decoded.
	KindMalformedResponse Kind = "malformed_response"
	// KindInvalidRequest: the request failed validation before being sent.
	KindInvalidRequest Kind = "invalid_request"
	// KindTokenStore: the session token could not be read or persisted.
	KindTokenStore Kind = "token_store"
)

// Fixed user-facing messages.
const (
	MessageUnauthorized      = "Authentication failed. Please login again."
	MessageMalformedResponse = "Invalid response format from server"
	MessageResponseTooLarge  = "Response from server is too large (over 10 MiB)"
)

// Error is the single failure type returned by Client operations.
// Error() yields a human-readable message suitable for display as-is.
type Error struct {
	Kind       Kind
	Op         string // endpoint name
	StatusCode int    // 0 when no response was received
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsKind reports whether err (or any wrapped error) is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsStatus reports whether err (or any wrapped error) is an *Error carrying the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

func backendUnavailableMessage(baseURL string) string {
	return fmt.Sprintf("The server at %s returned an HTML page instead of an API response. "+
		"The backend may be down, the configured base URL may be wrong, or the server hit an internal error.", baseURL)
}

// asMalformed re-wraps a decoding fault unless it already is one of ours.
func asMalformed(op string, err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return err
	}
	return &Error{Kind: KindMalformedResponse, Op: op, Message: MessageMalformedResponse, Err: err}
}
