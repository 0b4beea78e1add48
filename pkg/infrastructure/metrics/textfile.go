// Package metrics exports lint results in the Prometheus text format so batch
// runs can be scraped through a node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/felixgeelhaar/speclint/pkg/domain/report"
)

const namespace = "speclint"

// Collect builds a registry populated with the gauges for one summary.
func Collect(summary *report.Summary) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	docScore := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "document_score",
		Help:      "Aggregated quality score of a specification document.",
	}, []string{"document"})
	checkPoints := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_points",
		Help:      "Points a single check awarded to a document.",
	}, []string{"document", "check"})
	mean := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mean_score",
		Help:      "Mean score across all linted documents.",
	})
	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Number of documents linted in the run.",
	})
	passed := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_passed",
		Help:      "1 when the mean score met the threshold, 0 otherwise.",
	})

	for _, c := range []prometheus.Collector{docScore, checkPoints, mean, total, passed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	for _, r := range summary.Reports {
		docScore.WithLabelValues(r.Document).Set(float64(r.Score))
		for _, c := range r.Checks {
			checkPoints.WithLabelValues(r.Document, c.Check).Set(float64(c.Points))
		}
	}
	mean.Set(summary.Mean)
	total.Set(float64(len(summary.Reports)))
	if summary.Passed() {
		passed.Set(1)
	}
	return reg, nil
}

// WriteTextfile writes the summary's metrics atomically to path.
func WriteTextfile(path string, summary *report.Summary) error {
	reg, err := Collect(summary)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
