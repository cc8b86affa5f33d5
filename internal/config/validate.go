package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration and returns a detailed error if it cannot
// be used to build an API client. Missing or partial credentials wrap
// ErrClientUnavailable.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry.max_attempts must not be negative, got %d", c.Retry.MaxAttempts)
	}
	if c.Retry.InitialDelay < 0 {
		return fmt.Errorf("retry.initial_delay must not be negative, got %s", c.Retry.InitialDelay)
	}
	return nil
}

// Validate checks the API section.
func (a *API) Validate() error {
	set := 0
	for _, v := range []string{a.Key, a.Secret, a.URL} {
		if v != "" {
			set++
		}
	}
	switch set {
	case 0:
		return fmt.Errorf("%w: no API key, secret or endpoint configured", ErrClientUnavailable)
	case 3:
	default:
		return fmt.Errorf("%w: %w", ErrClientUnavailable, errIncomplete)
	}

	u, err := url.Parse(a.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid api_url %q", ErrClientUnavailable, a.URL)
	}

	if a.HTTPMethod != MethodGet && a.HTTPMethod != MethodPost {
		return fmt.Errorf("api_http_method must be one of %s, %s; got %q", MethodGet, MethodPost, a.HTTPMethod)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %s", a.Timeout)
	}
	return nil
}

// ValidateOverrides enforces that explicitly given credentials come as a complete set.
func ValidateOverrides(o Overrides) error {
	given := 0
	for _, v := range []string{o.Key, o.Secret, o.URL} {
		if v != "" {
			given++
		}
	}
	if given != 0 && given != 3 {
		return errIncomplete
	}
	return nil
}
