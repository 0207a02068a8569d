package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rizome-dev/openaigo/pkg/errors"
	"github.com/rizome-dev/openaigo/pkg/models"
)

// DefaultUserAgent is sent unless overridden with WithUserAgent
const DefaultUserAgent = "openaigo/1.0.0"

// Client is the main client for interacting with the OpenAI API
type Client struct {
	config     Config
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// Option is a function that configures the client
type Option func(*Client)

// NewClient creates a new client for the given configuration
func NewClient(config Config, opts ...Option) *Client {
	c := &Client{
		config:    config,
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
		httpClient: &http.Client{
			Timeout: config.Timeout(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewDefaultClient creates a client for the public API, reading the token
// from OPENAI_API_KEY on every call
func NewDefaultClient(opts ...Option) *Client {
	return NewClient(DefaultConfig(), opts...)
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets a custom timeout for HTTP requests. A client passed to
// WithHTTPClient is copied, not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithUserAgent sets a custom user agent for requests
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-request debug logs
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracing wraps the HTTP transport with OpenTelemetry instrumentation.
// Apply it after WithHTTPClient.
func WithTracing(opts ...otelhttp.Option) Option {
	return func(c *Client) {
		hc := *c.httpClient
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = otelhttp.NewTransport(base, opts...)
		c.httpClient = &hc
	}
}

// Config returns the client's configuration
func (c *Client) Config() Config {
	return c.config
}

// Get performs an authenticated GET on path and decodes the body
func Get[T any](ctx context.Context, c *Client, path string) (*models.Response[T], error) {
	return send[T](ctx, c, http.MethodGet, path, nil)
}

// Post performs an authenticated POST of body as JSON on path and decodes the response
func Post[T any](ctx context.Context, c *Client, path string, body any) (*models.Response[T], error) {
	return send[T](ctx, c, http.MethodPost, path, body)
}

// Unwrap turns a decoded response into its payload or a typed error
func Unwrap[T any](resp *models.Response[T]) (*T, error) {
	if resp == nil {
		return nil, &errors.UnexpectedResponseError{}
	}

	switch {
	case resp.Kind == models.ResponseSuccess && resp.Success != nil:
		return resp.Success, nil
	case resp.Kind == models.ResponseError && resp.Error != nil:
		return nil, resp.Error.ToError(resp.StatusCode)
	default:
		return nil, &errors.UnexpectedResponseError{
			StatusCode: resp.StatusCode,
			Raw:        resp.Raw,
		}
	}
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (*models.Response[T], error) {
	status, data, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	resp := &models.Response[T]{}
	// An empty body decodes to nothing and is reported as unrecognized
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, resp); err != nil {
			return nil, &errors.DecodeError{StatusCode: status, Body: data, Err: err}
		}
	}
	resp.StatusCode = status

	return resp, nil
}

// doRequest performs an HTTP request and returns the status and the full body
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (int, []byte, error) {
	token, err := c.config.ResolveToken()
	if err != nil {
		return 0, nil, err
	}

	url := c.config.EndpointURL(path)

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &errors.EncodeError{Err: err}
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, &errors.TransportError{Op: method, URL: url, Err: err}
	}

	// Set headers
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("url", url).
		Logger()

	start := time.Now()
	log.Debug().Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return 0, nil, &errors.TransportError{Op: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug().Err(err).Int("status", resp.StatusCode).Msg("reading response failed")
		return 0, nil, &errors.TransportError{Op: "read " + method, URL: url, Err: err}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("duration", time.Since(start)).
		Msg("received response")

	return resp.StatusCode, data, nil
}
