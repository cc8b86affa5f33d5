package config

import (
	"errors"
	"time"
)

// ErrClientUnavailable is returned when no usable CloudStack API client can be
// configured. Reconciliation never starts in that case.
var ErrClientUnavailable = errors.New("CloudStack API client unavailable")

// HTTP methods accepted by the CloudStack API.
const (
	MethodGet  = "get"
	MethodPost = "post"
)

// Defaults applied before any file, environment or flag source.
const (
	DefaultHTTPMethod   = MethodGet
	DefaultTimeout      = 10 * time.Second
	DefaultRegion       = "cloudstack"
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = 500 * time.Millisecond
)

// Config holds the csgroup tool configuration.
type Config struct {
	API         API    `yaml:"api"`
	Retry       Retry  `yaml:"retry"`
	MetricsFile string `yaml:"metrics_file"`
}

// API holds the CloudStack endpoint and credentials. The values are forwarded
// to the API client and never interpreted by the reconciler.
type API struct {
	Key        string        `yaml:"key"`
	Secret     string        `yaml:"secret"`
	URL        string        `yaml:"url"`
	HTTPMethod string        `yaml:"http_method"`
	Timeout    time.Duration `yaml:"timeout"`

	// Region selects the cloudstack.ini section.
	Region string `yaml:"region"`
}

// Retry configures backoff for read-only API calls. Mutating calls are never retried.
type Retry struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

// Overrides carries values given explicitly on the command line or in module
// arguments. Empty fields leave lower-precedence sources untouched.
type Overrides struct {
	Key        string
	Secret     string
	URL        string
	HTTPMethod string
	Timeout    time.Duration
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		API: API{
			HTTPMethod: DefaultHTTPMethod,
			Timeout:    DefaultTimeout,
			Region:     DefaultRegion,
		},
		Retry: Retry{
			MaxAttempts:  DefaultMaxAttempts,
			InitialDelay: DefaultInitialDelay,
		},
	}
}

// apply copies non-empty override values onto the API configuration.
func (a *API) apply(o Overrides) {
	if o.Key != "" {
		a.Key = o.Key
	}
	if o.Secret != "" {
		a.Secret = o.Secret
	}
	if o.URL != "" {
		a.URL = o.URL
	}
	if o.HTTPMethod != "" {
		a.HTTPMethod = o.HTTPMethod
	}
	if o.Timeout > 0 {
		a.Timeout = o.Timeout
	}
}
