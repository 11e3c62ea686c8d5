package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteSnapshot writes the application's gathered counters as name/value
// lines. There is no exposition endpoint; this is the CLI's way of showing
// what a run did.
func WriteSnapshot(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), MetricNamePrefix) {
			continue
		}
		for _, metric := range family.GetMetric() {
			var labels strings.Builder
			for _, pair := range metric.GetLabel() {
				fmt.Fprintf(&labels, " %s=%s", pair.GetName(), pair.GetValue())
			}
			if _, err := fmt.Fprintf(w, "%s%s %g\n", family.GetName(), labels.String(), metric.GetCounter().GetValue()); err != nil {
				return fmt.Errorf("failed to write metrics snapshot: %w", err)
			}
		}
	}
	return nil
}
