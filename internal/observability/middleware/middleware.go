// Package middleware provides http.RoundTripper decorators for outbound API calls.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id to the backend.
const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware decorates a RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain applies middlewares to base in the order they appear.
// The first middleware in the slice is the outermost (executes first).
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}

// RequestID sets X-Request-ID to a fresh UUID unless the caller already set one.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(req)
		}
		// RoundTrippers must not modify the caller's request
		clone := req.Clone(req.Context())
		clone.Header.Set(RequestIDHeader, uuid.NewString())
		return next.RoundTrip(clone)
	})
}

// Logging logs each outbound request with method, path, status, and duration.
// Headers and bodies are never logged: they carry the bearer token and personal data.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			ctx := req.Context()
			start := time.Now()

			resp, err := next.RoundTrip(req)
			duration := time.Since(start)

			if err != nil {
				logger.WarnContext(ctx, "api request failed",
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", req.Header.Get(RequestIDHeader),
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			logger.DebugContext(ctx, "api request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", resp.StatusCode,
				"request_id", req.Header.Get(RequestIDHeader),
				"duration", duration,
			)
			return resp, nil
		})
	}
}
