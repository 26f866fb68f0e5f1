// Package apitest runs a fake marketplace backend for tests.
package apitest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Request is a request received by the fake backend.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// JSONBody decodes the recorded body into a generic map.
func (r Request) JSONBody(t testing.TB) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%q)", err, r.Body)
	}
	return m
}

// Server is an httptest server with a route table and a request log.
type Server struct {
	*httptest.Server

	mux *http.ServeMux

	mu       sync.Mutex
	requests []Request
}

// New starts a fake backend that is closed when the test ends.
// Unrouted paths answer 404 with a JSON error body.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{mux: http.NewServeMux()}
	s.mux.HandleFunc("/", Error(http.StatusNotFound, "not found"))

	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.Server = httptest.NewServer(applyMiddlewares(s.mux,
		Logging(logger),
		Recovery,
		s.record,
	))
	t.Cleanup(s.Close)

	return s
}

// Handle routes pattern (net/http ServeMux syntax, e.g. "GET /api/users/me") to h.
func (s *Server) Handle(pattern string, h http.HandlerFunc) {
	s.mux.HandleFunc(pattern, h)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It fails the test if there is none.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("fake backend received no requests")
	}
	return s.requests[len(s.requests)-1]
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
