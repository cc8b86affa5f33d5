package handlers

import (
	"io"
	"testing"

	"github.com/go-logr/logr"

	"github.com/imamik/csgroup/internal/config"
	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

// useClient swaps the factory variables so handlers talk to client.
func useClient(t *testing.T, client cloudstack.API) {
	t.Helper()
	origLoad := loadConfig
	origClient := newAPIClient
	origLogger := newLogger
	t.Cleanup(func() {
		loadConfig = origLoad
		newAPIClient = origClient
		newLogger = origLogger
	})

	loadConfig = func(_ APIOptions) (*config.Config, error) {
		cfg := config.Default()
		cfg.API.Key = "key"
		cfg.API.Secret = "secret"
		cfg.API.URL = "https://cloud.example.com/client/api"
		return cfg, nil
	}
	newAPIClient = func(_ *config.Config, _ logr.Logger) cloudstack.API { return client }
	newLogger = func(_ io.Writer, _ int) logr.Logger { return logr.Discard() }
}

// isolateEnv removes every ambient CloudStack configuration source.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		config.EnvEndpoint, config.EnvKey, config.EnvSecret, config.EnvMethod,
		config.EnvTimeout, config.EnvConfig, config.EnvRegion,
	} {
		t.Setenv(env, "")
	}
	t.Setenv("HOME", t.TempDir())
}
