// Package handlers implements the business logic behind the csgroup commands.
//
// Commands in the commands package parse flags and delegate to the functions
// here. External dependencies are reached through package level factory
// variables so tests can replace them.
package handlers

import (
	"io"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/csgroup/internal/config"
	"github.com/imamik/csgroup/internal/logging"
	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

// APIOptions selects the configuration sources for the CloudStack client.
type APIOptions struct {
	ConfigPath string
	Key        string
	Secret     string
	URL        string
	HTTPMethod string
	// TimeoutSeconds is ignored when zero.
	TimeoutSeconds int
}

func (o APIOptions) overrides() config.Overrides {
	return config.Overrides{
		Key:        o.Key,
		Secret:     o.Secret,
		URL:        o.URL,
		HTTPMethod: o.HTTPMethod,
		Timeout:    time.Duration(o.TimeoutSeconds) * time.Second,
	}
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig builds and validates the effective configuration.
	loadConfig = func(opts APIOptions) (*config.Config, error) {
		overrides := opts.overrides()
		if err := config.ValidateOverrides(overrides); err != nil {
			return nil, argumentError{err}
		}
		cfg, err := config.Load(opts.ConfigPath, overrides)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// newAPIClient creates the CloudStack API client.
	newAPIClient = func(cfg *config.Config, log logr.Logger) cloudstack.API {
		return cloudstack.NewFromConfig(cfg, log)
	}

	// newLogger creates the diagnostic logger.
	newLogger = func(w io.Writer, verbosity int) logr.Logger {
		return logging.New(w, verbosity)
	}
)
