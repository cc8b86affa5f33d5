package cloudstack

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/csgroup/internal/config"
)

const defaultPageSize = 500

// RealClient implements API using the CloudStack HTTP query API.
type RealClient struct {
	endpoint   string
	apiKey     string
	secret     string
	method     string
	httpClient *http.Client
	retry      config.Retry
	pageSize   int
	log        logr.Logger
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPMethod selects GET (query string) or POST (form body) requests.
// The value is case-insensitive.
func WithHTTPMethod(method string) ClientOption {
	return func(c *RealClient) {
		if strings.EqualFold(method, http.MethodPost) {
			c.method = http.MethodPost
			return
		}
		c.method = http.MethodGet
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithRetry sets the backoff policy for read-only calls.
func WithRetry(r config.Retry) ClientOption {
	return func(c *RealClient) {
		c.retry = r
	}
}

// WithPageSize sets the page size used by list calls.
func WithPageSize(n int) ClientOption {
	return func(c *RealClient) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logr.Logger) ClientOption {
	return func(c *RealClient) {
		c.log = l
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(endpoint, apiKey, secret string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		secret:     secret,
		method:     http.MethodGet,
		httpClient: &http.Client{Timeout: config.DefaultTimeout},
		retry:      config.Default().Retry,
		pageSize:   defaultPageSize,
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a RealClient from a validated configuration.
func NewFromConfig(cfg *config.Config, log logr.Logger, opts ...ClientOption) *RealClient {
	base := []ClientOption{
		WithHTTPMethod(cfg.API.HTTPMethod),
		WithTimeout(cfg.API.Timeout),
		WithRetry(cfg.Retry),
		WithLogger(log.WithName("cloudstack")),
	}
	return NewRealClient(cfg.API.URL, cfg.API.Key, cfg.API.Secret, append(base, opts...)...)
}
