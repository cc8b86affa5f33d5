package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every CLOUDSTACK_* variable and points HOME at an empty
// directory so no real cloudstack.ini is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, env := range []string{EnvEndpoint, EnvKey, EnvSecret, EnvMethod, EnvTimeout, EnvConfig, EnvRegion} {
		t.Setenv(env, "")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", Overrides{})

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "csgroup.yaml", `
api:
  key: yaml-key
  secret: yaml-secret
  url: https://cloud.example.com/client/api
  http_method: POST
  timeout: 25s
retry:
  max_attempts: 5
  initial_delay: 1s
metrics_file: /var/lib/node_exporter/csgroup.prom
`)

	cfg, err := Load(path, Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.API.Key)
	assert.Equal(t, "yaml-secret", cfg.API.Secret)
	assert.Equal(t, "https://cloud.example.com/client/api", cfg.API.URL)
	assert.Equal(t, MethodPost, cfg.API.HTTPMethod)
	assert.Equal(t, 25*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.InitialDelay)
	assert.Equal(t, "/var/lib/node_exporter/csgroup.prom", cfg.MetricsFile)
	assert.Equal(t, DefaultRegion, cfg.API.Region)
}

func TestLoad_MissingYAML(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "bad.yaml", "api: [unclosed")

	_, err := Load(path, Overrides{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

const testINI = `
[cloudstack]
endpoint = https://ini.example.com/client/api
key = ini-key
secret = ini-secret
timeout = 20

[exoscale]
endpoint = https://api.exoscale.ch/compute
key = exo-key
secret = exo-secret
method = post
`

func TestLoad_INIFromEnvPath(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "custom.ini", testINI))

	cfg, err := Load("", Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "https://ini.example.com/client/api", cfg.API.URL)
	assert.Equal(t, "ini-key", cfg.API.Key)
	assert.Equal(t, "ini-secret", cfg.API.Secret)
	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, MethodGet, cfg.API.HTTPMethod)
}

func TestLoad_INIFromHome(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, ".cloudstack.ini", testINI)

	cfg, err := Load("", Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "ini-key", cfg.API.Key)
}

func TestLoad_INIRegion(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "custom.ini", testINI))
	t.Setenv(EnvRegion, "exoscale")

	cfg, err := Load("", Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "exoscale", cfg.API.Region)
	assert.Equal(t, "exo-key", cfg.API.Key)
	assert.Equal(t, MethodPost, cfg.API.HTTPMethod)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
}

func TestLoad_INIMissingSectionIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "custom.ini", testINI))
	t.Setenv(EnvRegion, "nowhere")

	cfg, err := Load("", Overrides{})

	require.NoError(t, err)
	assert.Empty(t, cfg.API.Key)
}

func TestLoad_INIInvalidTimeout(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "custom.ini", "[cloudstack]\ntimeout = soon\n"))

	_, err := Load("", Overrides{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	yamlPath := writeFile(t, t.TempDir(), "csgroup.yaml", `
api:
  key: yaml-key
  secret: yaml-secret
  url: https://yaml.example.com
  timeout: 5s
`)
	t.Setenv(EnvConfig, writeFile(t, t.TempDir(), "custom.ini", testINI))
	t.Setenv(EnvKey, "env-key")
	t.Setenv(EnvTimeout, "40")

	cfg, err := Load(yamlPath, Overrides{Secret: "flag-secret", HTTPMethod: "POST"})

	require.NoError(t, err)
	assert.Equal(t, "https://ini.example.com/client/api", cfg.API.URL, "ini beats yaml")
	assert.Equal(t, "env-key", cfg.API.Key, "env beats ini")
	assert.Equal(t, "flag-secret", cfg.API.Secret, "flags beat everything")
	assert.Equal(t, 40*time.Second, cfg.API.Timeout)
	assert.Equal(t, MethodPost, cfg.API.HTTPMethod, "method is normalised to lower case")
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "csgroup.yaml", "retry:\n  max_attempts: 1\n")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.Equal(t, DefaultInitialDelay, cfg.Retry.InitialDelay)
}
