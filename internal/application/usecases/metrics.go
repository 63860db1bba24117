package usecases

// OrderMetrics receives order lifecycle counters.
type OrderMetrics interface {
	RecordOrderAdded()
	RecordOrderDeleted()
	RecordStoreFailure(operation string)
	RecordCacheHit()
	RecordCacheMiss()
}
