package sitecheck

import "github.com/prometheus/client_golang/prometheus"

const (
	prometheusLabelKind = "kind"
	prometheusLabelType = "type"
)

type checkMetrics struct {
	scanSummary     prometheus.Summary
	pagesGauge      prometheus.Gauge
	extractCounter  *prometheus.CounterVec
	findingsCounter *prometheus.CounterVec
}

// metrics is constructed once at startup, the collectors are shared by every
// run in the process.
var metrics = setupMetrics()

func setupMetrics() checkMetrics {
	m := checkMetrics{
		scanSummary: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "sitecheck_scan_durations_seconds",
			Help:       "per file scan duration including reading and parsing",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		pagesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitecheck_index_pages",
			Help: "pages in the last completed index",
		}),
		extractCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitecheck_extracted_total",
			Help: "extracted references by kind",
		}, []string{prometheusLabelKind}),
		findingsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitecheck_findings_total",
			Help: "validation findings by type",
		}, []string{prometheusLabelType}),
	}
	prometheus.MustRegister(
		m.scanSummary,
		m.pagesGauge,
		m.extractCounter,
		m.findingsCounter,
	)
	return m
}
