package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okTransport(captured **http.Request) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		*captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     http.Header{},
			Request:    req,
		}, nil
	})
}

func TestRequestID(t *testing.T) {
	var got *http.Request
	rt := Chain(okTransport(&got), RequestID)

	req, err := http.NewRequest(http.MethodGet, "http://api.test/api/shifts", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	id := got.Header.Get(RequestIDHeader)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr, "request id %q is a uuid", id)
	assert.Empty(t, req.Header.Get(RequestIDHeader), "caller request untouched")

	req.Header.Set(RequestIDHeader, "fixed")
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Header.Get(RequestIDHeader))
}

func TestLogging_NeverLogsAuthorization(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var got *http.Request
	rt := Chain(okTransport(&got), RequestID, Logging(logger))

	req, err := http.NewRequest(http.MethodPost, "http://api.test/api/auth/login", strings.NewReader(`{"password":"hunter2"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret-token")

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "path=/api/auth/login")
	assert.Contains(t, out, "status=200")
	assert.NotContains(t, out, "secret-token")
	assert.NotContains(t, out, "hunter2")
}

func TestLogging_TransportError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	boom := errors.New("connection refused")
	rt := Chain(RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	}), Logging(logger))

	req, err := http.NewRequest(http.MethodGet, "http://api.test/api/venues", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "api request failed")
}
