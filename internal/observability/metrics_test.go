package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecord(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.Record("/api/files", 200, 0.002)
	m.Record("/api/files", 200, 0.004)
	m.Record("/api/file/*", 403, 0.001)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/files", "200")); got != 2 {
		t.Errorf("requests_total{/api/files,200} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/file/*", "403")); got != 1 {
		t.Errorf("requests_total{/api/file/*,403} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.RequestDuration); got != 2 {
		t.Errorf("duration series = %d, want 2 routes", got)
	}
}
