package des

// SingleRunEngine is the simplest RunStrategy: one replication, start to
// finish, with no cross-replication bookkeeping at all.
type SingleRunEngine struct {
	*Engine
}

// NewSingleRunEngine creates a SingleRunEngine ready to Run.
func NewSingleRunEngine() *SingleRunEngine {
	e := &SingleRunEngine{Engine: newEngine()}
	e.Engine.strategy = e

	return e
}

// DoRun implements RunStrategy: prepare the simulation, then fire events and
// monitor statistics until end-of-simulation or the event list drains, then
// finalize.
func (e *SingleRunEngine) DoRun() error {
	e.PrepareSimulation()

	for !e.EndOfSimulation() && e.PendingEvents() > 0 {
		e.FireNextEvent()
		e.MonitorStatistics()
	}

	e.FinalizeSimulation()

	return nil
}
