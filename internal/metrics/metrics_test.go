package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	require.NotNil(t, m)

	m.HTTPRequests.WithLabelValues("GET", "GET /employees", "200").Inc()
	m.DBQueryDuration.WithLabelValues("list_employees").Observe(0.01)

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "GET /employees", "200")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RowsImported.WithLabelValues("created")), 0)
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}
