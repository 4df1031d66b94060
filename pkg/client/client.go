package client

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

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/weaveworks/beerctl/pkg/version"
)

// DefaultBaseURL is the public beer catalog service.
const DefaultBaseURL = "https://api.springframework.guru"

// HTTPClient defines an http client which then can be used to test the
// transport code.
//go:generate counterfeiter -o fakes/fake_http_client.go . HTTPClient
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// ServiceOptions holds options to connect to the catalog service
type ServiceOptions struct {
	// BaseURL is the origin of the catalog service, e.g. https://api.springframework.guru.
	BaseURL string
	// Timeout bounds a whole round trip. Zero leaves it to the transport.
	Timeout time.Duration
	// RateLimit is the maximum number of requests per second. Zero disables limiting.
	RateLimit float64
	RateBurst int
	// UserAgent defaults to beerctl/<version>.
	UserAgent string
	// Logger receives a debug line per request. Defaults to a no-op logger.
	Logger *zap.Logger
	// Registerer, when set, receives the client request metrics.
	Registerer prometheus.Registerer
	// HTTPClient replaces the instrumented http.Client built from the options above.
	HTTPClient HTTPClient
}

// Request describes a single call to the catalog service.
type Request struct {
	Method string
	// Path is an escaped path relative to the base URL, e.g. /api/v1/beer.
	Path  string
	Query url.Values
	// Body is encoded as JSON when non-nil.
	Body interface{}
}

// Response is the raw outcome of a round trip. Any status code is a valid Response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is a catalog client
type Client struct {
	baseURL    *url.URL
	httpClient HTTPClient
	limiter    *rate.Limiter
	userAgent  string
	logger     *zap.Logger
}

// NewFromOptions creates a new Client from the supplied options
func NewFromOptions(options ServiceOptions) (*Client, error) {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", options.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be an absolute http or https url", options.BaseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: options.HTTPClient,
		userAgent:  options.UserAgent,
		logger:     options.Logger,
	}
	if c.userAgent == "" {
		c.userAgent = version.UserAgent()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if options.RateLimit > 0 {
		burst := options.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), burst)
	}
	if c.httpClient == nil {
		transport := http.DefaultTransport
		if options.Registerer != nil {
			m, err := newMetrics(options.Registerer)
			if err != nil {
				return nil, fmt.Errorf("failed to register client metrics: %w", err)
			}
			transport = m.instrument(transport)
		}
		c.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   options.Timeout,
		}
	}
	return c, nil
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// DoRequest sends a request to the catalog service. Only failures to complete
// the round trip are returned as errors; non-2xx responses are not.
func (c *Client) DoRequest(ctx context.Context, r Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("catalog request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("catalog request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	if r.Method == "" {
		return nil, errors.New("request method must be set")
	}
	u, err := c.requestURL(r.Path)
	if err != nil {
		return nil, err
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// requestURL appends the escaped path to the base url as is. Dot segments are
// kept so an identifier like ".." still addresses its own resource.
func (c *Client) requestURL(escapedPath string) (*url.URL, error) {
	u := *c.baseURL
	u.RawPath = strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + escapedPath
	p, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", escapedPath, err)
	}
	u.Path = p
	return &u, nil
}
