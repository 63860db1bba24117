package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderMetrics(t *testing.T) {
	t.Parallel()

	m := NewOrderMetrics(prometheus.NewRegistry())

	require.NotNil(t, m.ordersAdded)
	require.NotNil(t, m.ordersDeleted)
	require.NotNil(t, m.storeFailures)
	require.NotNil(t, m.cacheLookups)
	require.NotNil(t, m.requestDuration)
}

func TestNewOrderMetrics_RegisterTwice(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first := NewOrderMetrics(reg)
	second := NewOrderMetrics(reg)

	second.RecordOrderAdded()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.ordersAdded))
}

func TestOrderMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := NewOrderMetrics(prometheus.NewRegistry())

	m.RecordOrderAdded()
	m.RecordOrderAdded()
	m.RecordOrderDeleted()
	m.RecordStoreFailure("add")
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordCacheMiss()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeFailures.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
}

func TestOrderMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)

	m.RecordRequest("GET", "/order/:id", 200, 15*time.Millisecond)
	m.RecordRequest("GET", "/order/:id", 404, 3*time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
}
