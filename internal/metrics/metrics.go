// Package metrics holds the Prometheus registry shared by csgroup components.
//
// csgroup is a short-lived process, so metrics are not served over HTTP. They
// are written once per invocation to a node-exporter textfile instead.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every csgroup metric name.
const Namespace = "csgroup"

// Registry is the registry all csgroup collectors register with.
var Registry = prometheus.NewRegistry()

// WriteTextfile writes the current state of Registry to path in the Prometheus
// text exposition format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
