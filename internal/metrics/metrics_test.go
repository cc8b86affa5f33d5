package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile_EmptyPath(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WriteTextfile(""))
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	probe := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "textfile_probe_total",
		Help:      "Probe counter for textfile tests",
	})
	require.NoError(t, Registry.Register(probe))
	probe.Inc()

	path := filepath.Join(t.TempDir(), "csgroup.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "csgroup_textfile_probe_total 1")
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	t.Parallel()

	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "csgroup.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics textfile")
}
