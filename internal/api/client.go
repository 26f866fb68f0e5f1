package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/gigshift/gigshift/internal/observability/middleware"
	"github.com/gigshift/gigshift/internal/tokensource"
)

const (
	// DefaultTimeout bounds every request end to end, including the body read.
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "gigshift-cli/1.0"
	// maxBodySize caps response bodies to keep a misbehaving server from exhausting memory.
	maxBodySize = 10 << 20

	tracerName = "github.com/gigshift/gigshift/internal/api"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	timeout    time.Duration
	transport  http.RoundTripper
	userAgent  string
	registerer prometheus.Registerer
	logger     *slog.Logger
}

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithTransport sets the base transport requests are sent through.
// If not provided, http.DefaultTransport is used.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *clientConfig) {
		c.transport = rt
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithLogger sets the logger used for request logging. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// Client calls the gigshift backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokensource.Source
	userAgent  string
	validate   *validator.Validate
	metrics    *metrics
	tracer     trace.Tracer
}

// New creates a Client for the API at baseURL, authenticating with tokens from src.
func New(baseURL string, src *tokensource.Source, opts ...Option) (*Client, error) {
	if src == nil {
		return nil, fmt.Errorf("missing token source")
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	cfg := &clientConfig{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.timeout)
	}

	m, err := newMetrics(cfg.registerer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.timeout,
			Transport: middleware.Chain(cfg.transport,
				middleware.RequestID,
				middleware.Logging(cfg.logger),
			),
		},
		tokens:    src,
		userAgent: cfg.userAgent,
		validate:  newValidator(),
		metrics:   m,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the API origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Invoke calls ep and returns the normalized response body unchanged.
// The body is nil when the server sent none.
func (c *Client) Invoke(ctx context.Context, ep Endpoint, req Request) (json.RawMessage, error) {
	return c.instrument(ctx, ep, func(ctx context.Context) (json.RawMessage, error) {
		return c.invoke(ctx, ep, req)
	})
}

// instrument runs fn in a client span and records its outcome. Typed calls
// decode inside fn so a malformed payload counts as a failure.
func (c *Client) instrument(ctx context.Context, ep Endpoint, fn func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "api."+ep.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gigshift.endpoint", ep.Name),
			attribute.String("http.request.method", ep.Method),
		),
	)
	defer span.End()

	start := time.Now()
	body, err := fn(ctx)
	c.metrics.observe(ep.Name, err, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(KindOf(err)))
		return nil, err
	}
	return body, nil
}

func (c *Client) invoke(ctx context.Context, ep Endpoint, req Request) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError(ep, err)
	}

	httpReq, err := c.newRequest(ctx, ep, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(ep, err)
	}
	defer func() { _ = resp.Body.Close() }()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return c.normalize(ep, resp)
}

func (c *Client) newRequest(ctx context.Context, ep Endpoint, req Request) (*http.Request, error) {
	target, err := ep.expand(c.baseURL, req.Params)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Op: ep.Name, Message: "Invalid request: " + err.Error(), Err: err}
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case ep.Multipart():
		buf, ct, err := encodeMultipart(ep.FileField, req.File, req.Fields)
		if err != nil {
			return nil, &Error{Kind: KindInvalidRequest, Op: ep.Name, Message: "Invalid upload: " + err.Error(), Err: err}
		}
		body, contentType = buf, ct
	case req.Body != nil:
		if err := c.validateRequest(req.Body); err != nil {
			return nil, &Error{Kind: KindInvalidRequest, Op: ep.Name, Message: "Invalid request: " + err.Error(), Err: err}
		}
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: KindInvalidRequest, Op: ep.Name, Message: "Invalid request: could not encode body", Err: err}
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Op: ep.Name, Message: "Invalid request: " + err.Error(), Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if ep.Auth {
		tok, err := c.tokens.TokenContext(ctx)
		switch {
		case errors.Is(err, tokensource.ErrNoToken):
			// Sent unauthenticated; the server decides.
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, transportError(ep, err)
		case err != nil:
			return nil, &Error{Kind: KindTokenStore, Op: ep.Name, Message: "Could not read session token: " + err.Error(), Err: err}
		default:
			tok.SetAuthHeader(httpReq)
		}
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	return httpReq, nil
}

func transportError(ep Endpoint, err error) *Error {
	return &Error{Kind: KindTransport, Op: ep.Name, Message: err.Error(), Err: err}
}

func (c *Client) validateRequest(body any) error {
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return humanizeValidation(c.validate.Struct(v.Interface()))
}

// parseBaseURL requires an absolute http(s) origin and drops any trailing slash.
func parseBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("base URL %q must not carry a query or fragment", raw)
	}
	return trimmed, nil
}
