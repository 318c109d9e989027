// Package gateway is the single choke point for all outbound backend
// calls. Every service routes through Request or one of its method
// wrappers; the normalization contract here must hold for every call
// site: transport, timeout, HTTP and envelope failures all collapse
// into one Response shape and are never surfaced as a Go error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

var errBaseURLRequired = errors.New("backend base url is required")

// Client issues requests against the configured backend base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	metrics    *metrics.GatewayMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMetrics attaches request instrumentation.
func WithMetrics(m *metrics.GatewayMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL: strings.TrimRight(trimmed, "/"),
		timeout: defaultTimeout,
		// The outer http.Client carries no timeout of its own: the
		// per-request context deadline is the only cancellation
		// source, so a fast response always wins the race.
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Config is the per-request option bag.
type Config struct {
	// Timeout overrides the client default when positive.
	Timeout time.Duration
	// Headers are merged over the computed defaults.
	Headers map[string]string
	// AccessToken, when set, is sent as a bearer Authorization header.
	AccessToken string
	// Cookies are relayed to the backend (credential include mode).
	Cookies []*http.Cookie
}

// Options describes one outbound call.
type Options struct {
	Method string
	Body   any
	Config Config
}

// Request performs one backend call and normalizes every outcome into
// a Response. It never panics and never returns a Go error; callers
// branch on Success and Kind. No retries are performed.
func Request[T any](ctx context.Context, c *Client, endpoint string, opts Options) Response[T] {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	timeout := opts.Config.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	start := time.Now()
	resp := c.do(ctx, method, endpoint, opts, timeout)

	var out Response[T]
	if resp.err != nil {
		out = failure[T](resp.err)
	} else {
		out = decode[T](resp.envelope)
	}

	c.metrics.ObserveRequest(method, outcomeLabel(out.Kind), time.Since(start))
	return out
}

type rawResult struct {
	envelope Envelope
	err      *pkgerrors.Error
}

func (c *Client) do(ctx context.Context, method, endpoint string, opts Options, timeout time.Duration) rawResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader *bytes.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return rawResult{err: pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body").
				WithDetails(err.Error())}
		}
		bodyReader = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	var req *http.Request
	var err error
	if bodyReader != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, bodyReader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return rawResult{err: pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build backend request").
			WithDetails(err.Error())}
	}

	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.Config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Config.AccessToken)
	}
	for key, value := range opts.Config.Headers {
		req.Header.Set(key, value)
	}
	for _, cookie := range opts.Config.Cookies {
		req.AddCookie(cookie)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return rawResult{err: classifyTransport(ctx, err)}
	}
	defer func() { _ = httpResp.Body.Close() }()

	var envelope Envelope
	decodeErr := json.NewDecoder(httpResp.Body).Decode(&envelope)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP Error: %d %s", httpResp.StatusCode, http.StatusText(httpResp.StatusCode))
		details := envelope.Errors
		if len(details) == 0 {
			details = []string{fmt.Sprintf("HTTP Error: %d", httpResp.StatusCode)}
		}
		return rawResult{err: pkgerrors.New(pkgerrors.CodeHTTP, msg).
			WithStatus(httpResp.StatusCode).
			WithDetails(details...)}
	}

	if decodeErr != nil {
		return rawResult{err: pkgerrors.Wrap(pkgerrors.CodeInternal, decodeErr, "decode backend response").
			WithDetails(decodeErr.Error())}
	}

	return rawResult{envelope: envelope}
}

// classifyTransport maps a failed http.Client.Do into the taxonomy: a
// tripped deadline is a timeout, everything else is a network failure.
func classifyTransport(ctx context.Context, err error) *pkgerrors.Error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return pkgerrors.Wrap(pkgerrors.CodeTimeout, err, "backend request timed out")
	}
	return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "backend unreachable")
}

// decode turns a transport-successful envelope into the final response,
// applying the application-level success check.
func decode[T any](envelope Envelope) Response[T] {
	if envelope.Code != envelopeSuccessCode {
		errs := envelope.Errors
		if len(errs) == 0 {
			msg := envelope.Message
			if msg == "" {
				msg = "Unknown error"
			}
			errs = []string{"API Error: " + msg}
		}
		return Response[T]{
			Success: false,
			Message: envelope.Message,
			Errors:  errs,
			Kind:    pkgerrors.CodeAPI,
		}
	}

	var data T
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return failure[T](pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode backend payload").
				WithDetails(err.Error()))
		}
	}

	return Response[T]{
		Success: true,
		Data:    data,
		Message: envelope.Message,
	}
}

// failure translates a tagged error into the normalized response.
// Matched exhaustively so every taxonomy entry keeps its contract
// message.
func failure[T any](err *pkgerrors.Error) Response[T] {
	switch err.Code() {
	case pkgerrors.CodeNetwork, pkgerrors.CodeTimeout:
		return Response[T]{
			Success: false,
			Errors:  []string{pkgerrors.MetadataFor(err.Code()).PublicMessage},
			Kind:    err.Code(),
		}
	case pkgerrors.CodeHTTP:
		return Response[T]{
			Success: false,
			Message: err.Message(),
			Errors:  err.Details(),
			Kind:    pkgerrors.CodeHTTP,
		}
	default:
		errs := err.Details()
		if len(errs) == 0 {
			errs = []string{"An unexpected error occurred"}
		}
		return Response[T]{
			Success: false,
			Message: err.Message(),
			Errors:  errs,
			Kind:    err.Code(),
		}
	}
}

func outcomeLabel(kind pkgerrors.Code) string {
	if kind == "" {
		return "success"
	}
	return strings.ToLower(string(kind))
}

// Get issues a GET request. Pure partial application of Request.
func Get[T any](ctx context.Context, c *Client, endpoint string, cfg Config) Response[T] {
	return Request[T](ctx, c, endpoint, Options{Method: http.MethodGet, Config: cfg})
}

// Post issues a POST request with a JSON body.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any, cfg Config) Response[T] {
	return Request[T](ctx, c, endpoint, Options{Method: http.MethodPost, Body: body, Config: cfg})
}

// Patch issues a PATCH request with a JSON body.
func Patch[T any](ctx context.Context, c *Client, endpoint string, body any, cfg Config) Response[T] {
	return Request[T](ctx, c, endpoint, Options{Method: http.MethodPatch, Body: body, Config: cfg})
}

// Put issues a PUT request with a JSON body.
func Put[T any](ctx context.Context, c *Client, endpoint string, body any, cfg Config) Response[T] {
	return Request[T](ctx, c, endpoint, Options{Method: http.MethodPut, Body: body, Config: cfg})
}

// Delete issues a DELETE request.
func Delete[T any](ctx context.Context, c *Client, endpoint string, cfg Config) Response[T] {
	return Request[T](ctx, c, endpoint, Options{Method: http.MethodDelete, Config: cfg})
}
