// Package httpapi exposes the query interface over HTTP: GET
// /search?q=... returning JSON results, instrumented with Prometheus
// collectors.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frejajensen9/web-based-search-engine-24/internal/apperr"
	"github.com/frejajensen9/web-based-search-engine-24/internal/metrics"
	"github.com/frejajensen9/web-based-search-engine-24/internal/search"
)

// NewMux builds the HTTP handler: GET /search?q=... for queries and, if
// reg is non-nil, GET /metrics for Prometheus scraping.
func NewMux(engine *search.Engine, collectors *metrics.Collectors, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		q := r.URL.Query().Get("q")

		results, err := engine.Search(r.Context(), q)
		if err != nil {
			logger.Error("search failed", "query", q, "error", err)
			if collectors != nil {
				collectors.QueriesTotal.WithLabelValues("error").Inc()
			}
			http.Error(w, err.Error(), apperr.HTTPStatusCode(err))
			return
		}

		if collectors != nil {
			resultType := "hit"
			if len(results) == 0 {
				resultType = "zero_result"
			}
			collectors.QueriesTotal.WithLabelValues(resultType).Inc()
			collectors.QueryLatency.Observe(time.Since(start).Seconds())
			collectors.QueryResultsCount.Observe(float64(len(results)))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(results)
	})

	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return mux
}
