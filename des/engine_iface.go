package des

// RunStrategy lets the base Engine delegate its top-level control loop to a
// concrete variant: the Engine owns the clock, event list and firing
// primitives, while SingleRunEngine, ReplicationsEngine and BatchMeansEngine
// each reuse those primitives (FireNextEvent, MonitorStatistics,
// PrepareSimulation, FinalizeSimulation) to implement a different run
// strategy.
type RunStrategy interface {
	// DoRun executes the concrete variant's control loop. Engine.Run
	// brackets this call by clearing and then setting EndOfSimulation.
	DoRun() error
}

// StatisticFactory is an optional capability a RunStrategy can implement: a
// concrete engine may know how to build a registered AnalyzableStatistic
// from an opaque description (e.g. a configuration struct describing a mean
// or quantile estimator). Engine.MakeAnalyzableStatistic returns an
// Unsupported error if the current RunStrategy does not implement this.
type StatisticFactory interface {
	DoMakeAnalyzableStatistic(desc interface{}) (AnalyzableStatistic, error)
}
