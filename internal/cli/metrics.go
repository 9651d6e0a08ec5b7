package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rohmanhakim/recipebox/pkg/fileutil"
)

// writeMetricsFile dumps the default registry, which holds the cache
// counters, in the node-exporter textfile format. An empty path is a no-op.
func writeMetricsFile(path string) error {
	if path == "" {
		return nil
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
