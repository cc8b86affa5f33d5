package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load. The names follow the CloudStack CLI conventions.
const (
	EnvEndpoint = "CLOUDSTACK_ENDPOINT"
	EnvKey      = "CLOUDSTACK_KEY"
	EnvSecret   = "CLOUDSTACK_SECRET"
	EnvMethod   = "CLOUDSTACK_METHOD"
	EnvTimeout  = "CLOUDSTACK_TIMEOUT"
	EnvConfig   = "CLOUDSTACK_CONFIG"
	EnvRegion   = "CLOUDSTACK_REGION"
)

// Load builds the effective configuration.
//
// Sources are applied in increasing precedence: defaults, the YAML file at path
// (skipped when empty), cloudstack.ini, CLOUDSTACK_* environment variables and
// finally the explicit overrides.
func Load(path string, overrides Overrides) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if region := os.Getenv(EnvRegion); region != "" {
		cfg.API.Region = region
	}

	iniPath := findINI()
	if iniPath != "" {
		if err := cfg.API.mergeINI(iniPath); err != nil {
			return nil, err
		}
	}

	cfg.API.mergeEnv()
	cfg.API.apply(overrides)
	cfg.API.HTTPMethod = strings.ToLower(cfg.API.HTTPMethod)

	return cfg, nil
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return nil
}

// findINI returns the first cloudstack.ini candidate that exists:
// $CLOUDSTACK_CONFIG, ./cloudstack.ini, ~/.cloudstack.ini.
func findINI() string {
	candidates := []string{os.Getenv(EnvConfig), "cloudstack.ini"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".cloudstack.ini"))
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// mergeINI applies the region section of a cloudstack.ini file.
// A file without the requested section is ignored.
func (a *API) mergeINI(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	section, err := f.GetSection(a.Region)
	if err != nil {
		return nil
	}

	if v := section.Key("endpoint").String(); v != "" {
		a.URL = v
	}
	if v := section.Key("key").String(); v != "" {
		a.Key = v
	}
	if v := section.Key("secret").String(); v != "" {
		a.Secret = v
	}
	if v := section.Key("method").String(); v != "" {
		a.HTTPMethod = v
	}
	if section.HasKey("timeout") {
		seconds, err := section.Key("timeout").Int()
		if err != nil {
			return fmt.Errorf("invalid timeout in %s: %w", path, err)
		}
		a.Timeout = secondsToDuration(seconds)
	}
	return nil
}

func (a *API) mergeEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		a.URL = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		a.Key = v
	}
	if v := os.Getenv(EnvSecret); v != "" {
		a.Secret = v
	}
	if v := os.Getenv(EnvMethod); v != "" {
		a.HTTPMethod = v
	}
	a.Timeout = parseSeconds(EnvTimeout, a.Timeout)
}

// errIncomplete is wrapped by Validate when only part of the credentials are set.
var errIncomplete = errors.New("parameters are required together: api_key, api_secret, api_url")
