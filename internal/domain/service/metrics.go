package service

// Metrics records domain counters. Implementations must be safe for concurrent use.
type Metrics interface {
	OrderTransition(action string)
	Fanout(kind string)
	Dispatch(topic, result string)
	BatchSize(n int)
}
