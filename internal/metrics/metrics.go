package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes HTTP request counters and latencies for the API, database query
// durations, spreadsheet import results and the state of the directory front-end.
type Metrics struct {
	HTTPRequests          *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	DBQueryDuration       *prometheus.HistogramVec
	RowsImported          *prometheus.CounterVec
	DirectoryRefreshes    *prometheus.CounterVec
	LastSuccessfulRefresh prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_http_requests_total",
			Help: "Total number of HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "athena_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "athena_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'create_employee', 'list_employees', ...
		RowsImported: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_import_rows_total",
			Help: "Total number of spreadsheet rows processed by the roster import.",
		}, []string{"result"}),
		DirectoryRefreshes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "athena_directory_refreshes_total",
			Help: "Total times the directory front-end fetched the employee list.",
		}, []string{"status"}),
		LastSuccessfulRefresh: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "athena_directory_last_successful_refresh_timestamp",
			Help: "Last time the directory front-end loaded the employee list successfully",
		}),
	}

	metrics.RowsImported.WithLabelValues("created")
	metrics.RowsImported.WithLabelValues("rejected")
	metrics.DirectoryRefreshes.WithLabelValues("success")
	metrics.DirectoryRefreshes.WithLabelValues("failure")

	return metrics
}
