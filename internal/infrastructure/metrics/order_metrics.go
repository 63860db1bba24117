package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type OrderMetrics struct {
	ordersAdded   prometheus.Counter
	ordersDeleted prometheus.Counter
	storeFailures *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec
}

func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersAdded: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_orders_added_total",
			Help: "Total number of orders accepted by the store",
		})),
		ordersDeleted: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_orders_deleted_total",
			Help: "Total number of orders soft-deleted",
		})),
		storeFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_order_store_failures_total",
			Help: "Order store operations that failed against the backing database",
		}, []string{"operation"})),
		cacheLookups: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_order_cache_lookups_total",
			Help: "Order cache lookups by result",
		}, []string{"result"})),
		requestDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "route", "status"})),
	}
}

// register returns the already registered collector when the same metric is
// registered twice, which happens when several servers share the default registry.
func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

func (m *OrderMetrics) RecordOrderAdded() {
	m.ordersAdded.Inc()
}

func (m *OrderMetrics) RecordOrderDeleted() {
	m.ordersDeleted.Inc()
}

func (m *OrderMetrics) RecordStoreFailure(operation string) {
	m.storeFailures.WithLabelValues(operation).Inc()
}

func (m *OrderMetrics) RecordCacheHit() {
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *OrderMetrics) RecordCacheMiss() {
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *OrderMetrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
