// Package metrics exposes benchmark results as Prometheus gauges so a run
// can be scraped through the node exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/varex83/acs-lab-1/internal/bench"
	"github.com/varex83/acs-lab-1/internal/report"
)

// Collector owns a private registry holding the result gauges.
type Collector struct {
	registry *prometheus.Registry
	rate     *prometheus.GaugeVec
	duration *prometheus.GaugeVec
	percent  *prometheus.GaugeVec
}

func NewCollector() *Collector {
	labels := []string{"op", "type"}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		rate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "arithbench",
			Name:      "rate_ops_per_second",
			Help:      "Operator applications per second.",
		}, labels),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "arithbench",
			Name:      "duration_seconds",
			Help:      "Wall time of the timed loop.",
		}, labels),
		percent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "arithbench",
			Name:      "percent_of_best",
			Help:      "Rate relative to the fastest result of the run.",
		}, labels),
	}
	c.registry.MustRegister(c.rate, c.duration, c.percent)
	return c
}

// Observe replaces the gauges with the given run.
func (c *Collector) Observe(results []bench.Result) {
	c.rate.Reset()
	c.duration.Reset()
	c.percent.Reset()
	for _, r := range report.Rows(results) {
		c.rate.WithLabelValues(r.Op, r.Type).Set(r.Rate)
		c.duration.WithLabelValues(r.Op, r.Type).Set(float64(r.DurationNs) / 1e9)
		c.percent.WithLabelValues(r.Op, r.Type).Set(float64(r.Percent))
	}
}

// WriteTextfile writes the registry in text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
