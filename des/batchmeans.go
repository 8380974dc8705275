package des

// StatisticBuilder builds an AnalyzableStatistic from an opaque description
// and a batch size, for engines (like BatchMeansEngine) whose statistics
// need to know how the caller wants output data partitioned.
type StatisticBuilder func(desc interface{}, batchSize int) (AnalyzableStatistic, error)

// BatchMeansEngine runs a single long simulation in which registered
// statistics internally partition simulated time into batches to estimate
// variance without running independent replications. Its contract to those
// statistics is otherwise unchanged from SingleRunEngine; only the
// construction hook differs, since batch-means statistics need a batch size
// at creation time.
type BatchMeansEngine struct {
	*Engine

	batchSize int
	builder   StatisticBuilder
}

// NewBatchMeansEngine creates a BatchMeansEngine with the given batch size
// and statistic builder. builder may be nil if the caller only ever
// registers already-constructed statistics via RegisterStatistic.
func NewBatchMeansEngine(batchSize int, builder StatisticBuilder) *BatchMeansEngine {
	e := &BatchMeansEngine{Engine: newEngine(), batchSize: batchSize, builder: builder}
	e.Engine.strategy = e

	return e
}

// BatchSize returns the configured batch size.
func (e *BatchMeansEngine) BatchSize() int {
	return e.batchSize
}

// DoRun implements RunStrategy: one long run of the same prepare/fire/
// monitor/finalize lifecycle SingleRunEngine uses.
func (e *BatchMeansEngine) DoRun() error {
	e.PrepareSimulation()

	for !e.EndOfSimulation() && e.PendingEvents() > 0 {
		e.FireNextEvent()
		e.MonitorStatistics()
	}

	e.FinalizeSimulation()

	return nil
}

// DoMakeAnalyzableStatistic implements StatisticFactory by delegating to the
// configured StatisticBuilder with this engine's batch size.
func (e *BatchMeansEngine) DoMakeAnalyzableStatistic(desc interface{}) (AnalyzableStatistic, error) {
	if e.builder == nil {
		return nil, newError("DoMakeAnalyzableStatistic", Unsupported, "no statistic builder configured")
	}

	return e.builder(desc, e.batchSize)
}
