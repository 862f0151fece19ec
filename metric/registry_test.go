package metric

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CoreMetricsRegistered(t *testing.T) {
	r := NewRegistry()

	r.CoreMetrics().RecordOperation("stack", "push", "success")
	r.CoreMetrics().RecordOperation("stack", "push", "success")
	r.CoreMetrics().RecordOperation("queue", "dequeue", "underflow")

	expected := `
		# HELP linearkit_container_operations_total Total container operations by container, operation and outcome
		# TYPE linearkit_container_operations_total counter
		linearkit_container_operations_total{container="queue",operation="dequeue",outcome="underflow"} 1
		linearkit_container_operations_total{container="stack",operation="push",outcome="success"} 2
	`
	err := testutil.GatherAndCompare(r.PrometheusRegistry(),
		strings.NewReader(expected), "linearkit_container_operations_total")
	require.NoError(t, err)
}

func TestRegistry_RegisterAndUnregister(t *testing.T) {
	r := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_test_total",
		Help: "test counter",
	})

	require.NoError(t, r.Register("gateway", "test_total", counter))

	// Duplicate key is rejected
	err := r.Register("gateway", "test_total", counter)
	require.Error(t, err)

	assert.True(t, r.Unregister("gateway", "test_total"))
	assert.False(t, r.Unregister("gateway", "test_total"), "already removed")
}

func TestMetrics_SessionGauge(t *testing.T) {
	r := NewRegistry()

	r.CoreMetrics().RecordSessionCount(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.CoreMetrics().ActiveSessions))

	r.CoreMetrics().RecordSessionCount(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CoreMetrics().ActiveSessions))
}
