package des

// EngineContext is the transient reference passed to every sink while it
// fires. It exposes read-only access to engine state and a narrow mutation
// API restricted to scheduling new events; it must not be retained past the
// sink call that received it.
type EngineContext struct {
	engine *Engine
}

// Now returns the simulated clock. At the moment any sink observes it, it
// equals the fire time of the event currently being fired.
func (c *EngineContext) Now() VTime {
	return c.engine.simTime
}

// LastEventTime returns the time at which the previous firing completed.
func (c *EngineContext) LastEventTime() VTime {
	return c.engine.lastEventTime
}

// EndOfSimulation reports the engine's end-of-simulation flag.
func (c *EngineContext) EndOfSimulation() bool {
	return c.engine.endOfSim
}

// Schedule schedules a new event on behalf of the firing sink. It has the
// exact semantics of Engine.Schedule.
func (c *EngineContext) Schedule(source *EventSource, fireTime VTime, payload interface{}) Handle {
	return c.engine.Schedule(source, fireTime, payload)
}

// Reschedule reschedules a previously scheduled event. It has the exact
// semantics of Engine.Reschedule.
func (c *EngineContext) Reschedule(h Handle, newTime VTime) {
	c.engine.Reschedule(h, newTime)
}

// Cancel cancels a previously scheduled event. It has the exact semantics of
// Engine.Cancel.
func (c *EngineContext) Cancel(h Handle) {
	c.engine.Cancel(h)
}
