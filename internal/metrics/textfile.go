package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric in reg to file in the Prometheus text format.
// The file is replaced atomically so a collector never reads a partial dump.
func WriteTextfile(reg *prom.Registry, file string) error {
	if err := prom.WriteToTextfile(file, reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", file, err)
	}
	return nil
}
