// Package apiclient is the single gateway to the commerce REST API. It
// injects the session bearer token, maps failures onto errs sentinels and
// guards the upstream with a circuit breaker.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wichananm65/fashion-storefront/internal/errs"
	"github.com/wichananm65/fashion-storefront/internal/metrics"
)

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Transport   http.RoundTripper
	BreakerName string
}

type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[*Response]
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   *Multipart
}

type Response struct {
	Status int
	Body   []byte
}

func New(opts Options) *Client {
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	name := opts.BreakerName
	if name == "" {
		name = "commerce-api"
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		cb: createCircuitBreaker(name),
	}
}

func createCircuitBreaker(name string) *gobreaker.CircuitBreaker[*Response] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	// 4xx answers are the caller's problem, not an unhealthy upstream
	st.IsSuccessful = func(err error) bool {
		return err == nil || !errors.Is(err, errs.ErrUpstream)
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		metrics.BreakerState.WithLabelValues(name).Set(float64(to))
	}

	return gobreaker.NewCircuitBreaker[*Response](st)
}

func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.baseURL + path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		body        []byte
		contentType string
		err         error
	)
	switch {
	case req.Form != nil:
		body, contentType, err = req.Form.encode()
	case req.Body != nil:
		body, err = json.Marshal(req.Body)
		contentType = "application/json"
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", req.Method, path, err)
	}

	endpoint := endpointLabel(path)
	start := time.Now()
	resp, err := c.cb.Execute(func() (*Response, error) {
		return c.send(ctx, req.Method, target, body, contentType)
	})
	metrics.UpstreamDuration.WithLabelValues(req.Method, endpoint).Observe(time.Since(start).Seconds())

	status := 0
	if resp != nil {
		status = resp.Status
	}
	metrics.UpstreamRequests.WithLabelValues(req.Method, endpoint, metrics.StatusClass(status)).Inc()

	logger := zerolog.Ctx(ctx)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%s %s: %w", req.Method, path, errs.ErrCircuitOpen)
		}
		logger.Warn().Err(err).Str("method", req.Method).Str("path", path).Int("status", status).Msg("api call failed")
		return resp, err
	}
	logger.Debug().Str("method", req.Method).Str("path", path).Int("status", status).Msg("api call")
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, target string, body []byte, contentType string) (*Response, error) {
	request, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if token := TokenFrom(ctx); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", errs.ErrUpstream, err)
	}

	resp := &Response{Status: response.StatusCode, Body: data}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return resp, parseError(response.StatusCode, data)
	}
	return resp, nil
}

// Send performs req and decodes the JSON answer into out (when non-nil).
func (c *Client) Send(ctx context.Context, req Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Send(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Send(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

func (c *Client) PostForm(ctx context.Context, path string, form *Multipart, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPost, Path: path, Form: form}, out)
}

func (c *Client) PutForm(ctx context.Context, path string, form *Multipart, out any) error {
	return c.Send(ctx, Request{Method: http.MethodPut, Path: path, Form: form}, out)
}

// endpointLabel keeps metric cardinality bounded: /products/123 -> /products.
func endpointLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
