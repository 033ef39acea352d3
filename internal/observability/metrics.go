// Package observability holds the pipeline's prometheus counters.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "etl_pages_fetched_total",
			Help: "Listing pages fetched successfully",
		},
	)
	PagesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "etl_pages_skipped_total",
			Help: "Listing pages skipped, by reason",
		},
		[]string{"reason"},
	)
	ProductsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "etl_products_extracted_total",
			Help: "Raw product records extracted",
		},
	)
	RowsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "etl_rows_dropped_total",
			Help: "Raw rows dropped during transform, by reason",
		},
		[]string{"reason"},
	)
	DuplicatesRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "etl_duplicates_removed_total",
			Help: "Exact-duplicate rows removed during transform",
		},
	)
	RowsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "etl_rows_written_total",
			Help: "Clean rows written to the output file",
		},
	)
)

// Start registers the counters and serves /metrics on addr.
func Start(addr string) {
	prometheus.MustRegister(
		PagesFetched,
		PagesSkipped,
		ProductsExtracted,
		RowsDropped,
		DuplicatesRemoved,
		RowsWritten,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, nil)
}
