// Package metrics defines the Prometheus collectors for crawl and query
// activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors holds every Prometheus collector the crawler and query
// surface update.
type Collectors struct {
	PagesFetchedTotal  *prometheus.CounterVec
	PagesIndexedTotal  prometheus.Counter
	EdgesRecordedTotal prometheus.Counter
	CrawlDuration      prometheus.Histogram
	QueriesTotal       *prometheus.CounterVec
	QueryLatency       prometheus.Histogram
	QueryResultsCount  prometheus.Histogram
	CommitsTotal       *prometheus.CounterVec
}

// New creates and registers every collector against reg. Pass
// prometheus.NewRegistry() in tests to avoid the global default
// registry's duplicate-registration panics across test runs.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		PagesFetchedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spider_pages_fetched_total",
				Help: "Total page fetch attempts by outcome (ok, error).",
			},
			[]string{"outcome"},
		),
		PagesIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "spider_pages_indexed_total",
				Help: "Total pages that received a docID.",
			},
		),
		EdgesRecordedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "spider_edges_recorded_total",
				Help: "Total link-graph edges recorded.",
			},
		),
		CrawlDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spider_crawl_duration_seconds",
				Help:    "Wall-clock duration of a crawl session.",
				Buckets: prometheus.DefBuckets,
			},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spider_queries_total",
				Help: "Total search queries by result type (hit, zero_result).",
			},
			[]string{"result_type"},
		),
		QueryLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spider_query_latency_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		QueryResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spider_query_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50},
			},
		),
		CommitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spider_index_commits_total",
				Help: "Total index-session commits by outcome (ok, error).",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		c.PagesFetchedTotal,
		c.PagesIndexedTotal,
		c.EdgesRecordedTotal,
		c.CrawlDuration,
		c.QueriesTotal,
		c.QueryLatency,
		c.QueryResultsCount,
		c.CommitsTotal,
	)
	return c
}

// Handler returns the Prometheus scrape HTTP handler for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
