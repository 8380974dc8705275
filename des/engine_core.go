package des

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Engine owns the clock, the future-event list, the six engine-owned event
// sources, and the statistic registry. It exposes the scheduling API, the
// firing loop, and the statistic-driven termination check; the top-level
// control loop is supplied by a RunStrategy (singlerun.go, replications.go,
// batchmeans.go).
//
// An Engine is single-threaded cooperative: no method on an Engine may be
// called concurrently with another method on the same instance, and a sink
// must not call Advance or Run on its own engine.
type Engine struct {
	HookableBase

	list *EventList
	ctx  *EngineContext

	simTime       VTime
	lastEventTime VTime
	endOfSim      bool

	numEvents     uint64
	numUserEvents uint64

	beginOfSim        *EventSource
	endOfSimSource    *EventSource
	beforeEventFiring *EventSource
	afterEventFiring  *EventSource
	systemInit        *EventSource
	systemFinalize    *EventSource

	// stats maps a registered statistic's identity to whether the engine has
	// already seen it report steady state. This bookkeeping belongs to the
	// engine, not the statistic itself. statOrder preserves registration
	// order so MonitorStatistics walks deterministically, since Go map
	// iteration order is randomized.
	stats    map[AnalyzableStatistic]bool
	statOrder []AnalyzableStatistic

	strategy RunStrategy

	idgen IDGenerator

	relTol float64
	absTol float64
}

// newEngine builds the shared base state. It is unexported: callers go
// through NewSingleRunEngine, NewReplicationsEngine or NewBatchMeansEngine,
// each of which sets the strategy field to itself.
func newEngine() *Engine {
	e := &Engine{
		list:     NewEventList(),
		endOfSim: true,
		idgen:    GetIDGenerator(),
		relTol:   defaultRelTolerance,
		absTol:   defaultAbsTolerance,

		beginOfSim:        NewEventSource("Begin of Simulation"),
		endOfSimSource:    NewEventSource("End of Simulation"),
		beforeEventFiring: NewEventSource("Before Event Firing"),
		afterEventFiring:  NewEventSource("After Event Firing"),
		systemInit:        NewEventSource("System Initialization"),
		systemFinalize:    NewEventSource("System Finalization"),

		stats: make(map[AnalyzableStatistic]bool),
	}
	e.ctx = &EngineContext{engine: e}

	return e
}

// SetTolerance overrides the relative/absolute tolerance Reschedule uses to
// decide whether a new fire time is "essentially equal" to the current one.
func (e *Engine) SetTolerance(relTol, absTol float64) {
	e.relTol = relTol
	e.absTol = absTol
}

// --- accessors -------------------------------------------------------------

// SimulatedTime returns t_now, the simulated clock.
func (e *Engine) SimulatedTime() VTime { return e.simTime }

// LastEventTime returns the time of the most recently completed firing.
func (e *Engine) LastEventTime() VTime { return e.lastEventTime }

// EndOfSimulation reports the end-of-simulation flag.
func (e *Engine) EndOfSimulation() bool { return e.endOfSim }

// BeginOfSim returns the BEGIN-OF-SIMULATION event source.
func (e *Engine) BeginOfSim() *EventSource { return e.beginOfSim }

// EndOfSim returns the END-OF-SIMULATION event source.
func (e *Engine) EndOfSim() *EventSource { return e.endOfSimSource }

// BeforeEventFiring returns the BEFORE-EVENT-FIRING bracket source.
func (e *Engine) BeforeEventFiring() *EventSource { return e.beforeEventFiring }

// AfterEventFiring returns the AFTER-EVENT-FIRING bracket source.
func (e *Engine) AfterEventFiring() *EventSource { return e.afterEventFiring }

// SystemInitialization returns the SYSTEM-INITIALIZATION event source.
func (e *Engine) SystemInitialization() *EventSource { return e.systemInit }

// SystemFinalization returns the SYSTEM-FINALIZATION event source.
func (e *Engine) SystemFinalization() *EventSource { return e.systemFinalize }

// PendingEvents returns the number of events currently in the future-event
// list.
func (e *Engine) PendingEvents() int { return e.list.Len() }

func (e *Engine) String() string {
	return fmt.Sprintf("<Engine t=%v events=%d user_events=%d>", e.simTime, e.numEvents, e.numUserEvents)
}

// isInternalEvent reports whether evt is internal: an event is internal iff
// its source is one of the four bracket/boundary sources. SYSTEM-
// INITIALIZATION and SYSTEM-FINALIZATION events are deliberately excluded
// and count toward the user-event counter.
func (e *Engine) isInternalEvent(evt *Event) bool {
	return evt.Source == e.beginOfSim ||
		evt.Source == e.endOfSimSource ||
		evt.Source == e.beforeEventFiring ||
		evt.Source == e.afterEventFiring
}

// --- scheduling API ----------------------------------------------------

// Schedule inserts a new event to be fired by source at fireTime, carrying
// an optional payload, and returns its handle.
//
// If source is disabled, Schedule warns and returns nil without inserting.
// If fireTime is before t_now, Schedule warns and clamps fireTime to t_now.
func (e *Engine) Schedule(source *EventSource, fireTime VTime, payload interface{}) Handle {
	if !source.Enabled() {
		logrus.WithField("source", source.Name()).
			WithField("fire_time", fireTime).
			WithField("now", e.simTime).
			Warn("tried to schedule an event from a disabled event source")

		return nil
	}

	if fireTime < e.simTime {
		logrus.WithField("source", source.Name()).
			WithField("fire_time", fireTime).
			WithField("now", e.simTime).
			Warn("fire time refers to the past, clamping to current time")

		fireTime = e.simTime
	}

	evt := &Event{
		Source:         source,
		SchedulingTime: e.simTime,
		Payload:        payload,
		fireTime:       fireTime,
		index:          -1,
		id:             e.idgen.Generate(),
	}
	e.list.Push(evt)

	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosEventScheduled, Item: evt})

	return evt
}

// Reschedule moves a currently-scheduled event to a new fire time.
//
// If the event's source is disabled, Reschedule warns and no-ops. If
// newTime is in the past: when the event's current fire time is still in
// the future the new time is clamped to t_now and a warning is logged;
// otherwise the call is a no-op (also warned). If newTime is essentially
// equal to the current fire time, Reschedule warns and no-ops. Otherwise
// the event is erased and re-inserted with the new fire time, losing its
// old FIFO tie-break rank.
func (e *Engine) Reschedule(h Handle, newTime VTime) {
	if h == nil {
		return
	}

	if !h.Source.Enabled() {
		logrus.WithField("source", h.Source.Name()).
			WithField("new_time", newTime).
			Warn("tried to reschedule an event from a disabled event source")

		return
	}

	if newTime < e.simTime {
		if h.fireTime > e.simTime {
			logrus.WithField("new_time", newTime).
				WithField("now", e.simTime).
				Warn("new fire time refers to the past, clamping to current time")

			newTime = e.simTime
		} else {
			logrus.WithField("new_time", newTime).
				WithField("now", e.simTime).
				Warn("new fire time refers to the past, event will not be rescheduled")

			return
		}
	}

	if essentiallyEqual(float64(newTime), float64(h.fireTime), e.relTol, e.absTol) {
		logrus.WithField("new_time", newTime).
			WithField("fire_time", h.fireTime).
			Warn("new fire time is essentially equal to the old one, event will not be rescheduled")

		return
	}

	e.list.Erase(h)
	h.fireTime = newTime
	e.list.Push(h)
}

// Cancel removes a scheduled event without firing it. No-op if the event is
// not currently in the list (e.g. already fired or already canceled).
func (e *Engine) Cancel(h Handle) {
	if h == nil {
		return
	}

	e.list.Erase(h)
}

// --- statistic registry --------------------------------------------------

// RegisterStatistic adds stat to the registry. If the engine is currently
// mid-run (not at end-of-simulation), the statistic is immediately told to
// InitializeForExperiment rather than Reset — only PrepareSimulation resets
// statistics in bulk.
func (e *Engine) RegisterStatistic(stat AnalyzableStatistic) error {
	if stat == nil {
		return newError("RegisterStatistic", InvalidArgument, "statistic must not be nil")
	}

	if _, ok := e.stats[stat]; !ok {
		e.statOrder = append(e.statOrder, stat)
	}
	e.stats[stat] = stat.SteadyStateEntered()

	if !e.endOfSim {
		stat.InitializeForExperiment()
	}

	return nil
}

// UnregisterStatistic removes stat from the registry. Returns an
// InvalidArgument error if stat was never registered.
func (e *Engine) UnregisterStatistic(stat AnalyzableStatistic) error {
	if stat == nil {
		return newError("UnregisterStatistic", InvalidArgument, "statistic must not be nil")
	}

	if _, ok := e.stats[stat]; !ok {
		return newError("UnregisterStatistic", InvalidArgument, "statistic was not registered")
	}

	delete(e.stats, stat)

	for i, s := range e.statOrder {
		if s == stat {
			e.statOrder = append(e.statOrder[:i], e.statOrder[i+1:]...)
			break
		}
	}

	return nil
}

// ClearStatistics deregisters every statistic.
func (e *Engine) ClearStatistics() {
	e.stats = make(map[AnalyzableStatistic]bool)
	e.statOrder = nil
}

// MakeAnalyzableStatistic delegates to the current RunStrategy's
// DoMakeAnalyzableStatistic, then registers the result. Returns an
// Unsupported error if the strategy has no such factory.
func (e *Engine) MakeAnalyzableStatistic(desc interface{}) (AnalyzableStatistic, error) {
	factory, ok := e.strategy.(StatisticFactory)
	if !ok {
		return nil, newError("MakeAnalyzableStatistic", Unsupported,
			"this engine variant does not support building statistics from a description")
	}

	stat, err := factory.DoMakeAnalyzableStatistic(desc)
	if err != nil {
		return nil, err
	}

	if err := e.RegisterStatistic(stat); err != nil {
		return nil, err
	}

	return stat, nil
}

func (e *Engine) resetStatistics() {
	for _, stat := range e.statOrder {
		stat.Reset()
	}
}

// initializeStatisticsForExperiment tells every registered statistic to
// close out its current accumulation window and start the next one, without
// discarding everything it has seen. Used between replications instead of
// resetStatistics.
func (e *Engine) initializeStatisticsForExperiment() {
	for _, stat := range e.statOrder {
		stat.InitializeForExperiment()
	}
}

// monitorStatistics records each statistic's steady-state entry time the
// first time it is observed, and sets endOfSim if the registry is
// non-empty and every enabled statistic reports target precision reached.
// The walk never short-circuits: every statistic still needs its
// steady-state-entry time recorded.
func (e *Engine) monitorStatistics() {
	if len(e.statOrder) == 0 {
		return
	}

	precisionReached := true

	for _, stat := range e.statOrder {
		if !e.stats[stat] && stat.SteadyStateEntered() {
			e.stats[stat] = true
			stat.SteadyStateEnterTime(e.simTime)
		}

		if stat.Enabled() && !stat.TargetPrecisionReached() {
			precisionReached = false
		}
	}

	if precisionReached {
		logrus.WithField("now", e.simTime).
			Debug("target precision reached for all enabled statistics")

		e.endOfSim = true
	}
}

// --- firing loop -----------------------------------------------------------

// FireNextEvent pops and fires the earliest pending event. It is the unit
// of work every RunStrategy's control loop repeats; no-op if the list is
// empty.
func (e *Engine) FireNextEvent() {
	if e.list.Len() == 0 {
		return
	}

	evt := e.list.Pop()

	if !evt.Source.Enabled() {
		logrus.WithField("event", evt.ID()).
			WithField("source", evt.Source.Name()).
			Warn("event will not be fired since its source is disabled")

		return
	}

	if evt.fireTime < e.simTime {
		logrus.Panicf("cannot fire event %s in the past: fire_time=%v now=%v", evt.ID(), evt.fireTime, e.simTime)
	}

	e.simTime = evt.fireTime
	e.numEvents++

	if !e.isInternalEvent(evt) {
		e.numUserEvents++
	}

	e.fireWithBrackets(evt)

	e.lastEventTime = e.simTime

	if evt.Source == e.endOfSimSource {
		e.endOfSim = true
	}
}

// FireImmediate constructs an event with scheduling and fire times both
// equal to t_now, bypasses the event list, and fires it through the same
// bracket machinery as FireNextEvent. Used by the engine to inject
// BEGIN-OF-SIMULATION, SYSTEM-INITIALIZATION, SYSTEM-FINALIZATION and
// END-OF-SIMULATION outside the normal schedule/pop flow.
func (e *Engine) FireImmediate(source *EventSource, payload interface{}) {
	evt := &Event{
		Source:         source,
		SchedulingTime: e.simTime,
		Payload:        payload,
		fireTime:       e.simTime,
		index:          -1,
		id:             e.idgen.Generate(),
	}

	if !evt.Source.Enabled() {
		logrus.WithField("event", evt.ID()).
			WithField("source", evt.Source.Name()).
			Warn("immediate event will not be fired since its source is disabled")

		return
	}

	e.numEvents++

	if !e.isInternalEvent(evt) {
		e.numUserEvents++
	}

	e.fireWithBrackets(evt)

	e.lastEventTime = e.simTime

	if evt.Source == e.endOfSimSource {
		e.endOfSim = true
	}
}

// fireWithBrackets fires evt itself, surrounded by the before/after-event
// bracket events (synthesized only when their sources have sinks, and never
// re-inserted into the event list).
func (e *Engine) fireWithBrackets(evt *Event) {
	if !e.beforeEventFiring.Empty() {
		bracket := e.makeBracketEvent(e.beforeEventFiring, evt)
		e.beforeEventFiring.Fire(bracket, e.ctx)
	}

	evt.Source.Fire(evt, e.ctx)

	if !e.afterEventFiring.Empty() {
		bracket := e.makeBracketEvent(e.afterEventFiring, evt)
		e.afterEventFiring.Fire(bracket, e.ctx)
	}
}

func (e *Engine) makeBracketEvent(source *EventSource, embedded *Event) *Event {
	return &Event{
		Source:         source,
		SchedulingTime: e.simTime,
		fireTime:       e.simTime,
		Embedded:       embedded,
		index:          -1,
		id:             e.idgen.Generate(),
	}
}

// --- replication lifecycle --------------------------------------------------

// PrepareSimulation clears the event list, resets counters and statistics,
// then fires BEGIN-OF-SIMULATION and SYSTEM-INITIALIZATION immediately.
func (e *Engine) PrepareSimulation() {
	e.prepareReplication(true)
}

// PrepareNextReplication is PrepareSimulation's counterpart for the
// independent-replications engine: it clears the event list and counters
// the same way, but tells statistics to InitializeForExperiment instead of
// Reset, so cross-replication accumulation survives.
func (e *Engine) PrepareNextReplication() {
	e.prepareReplication(false)
}

func (e *Engine) prepareReplication(reset bool) {
	e.simTime = 0
	e.lastEventTime = 0
	e.numEvents = 0
	e.numUserEvents = 0
	e.endOfSim = false
	e.list.Clear()

	if reset {
		e.resetStatistics()
	} else {
		e.initializeStatisticsForExperiment()
	}

	e.FireImmediate(e.beginOfSim, nil)
	e.FireImmediate(e.systemInit, nil)
}

// FinalizeSimulation clears any pending events, fires SYSTEM-FINALIZATION
// and END-OF-SIMULATION immediately, and sets endOfSim.
func (e *Engine) FinalizeSimulation() {
	e.list.Clear()
	e.FireImmediate(e.systemFinalize, nil)
	e.FireImmediate(e.endOfSimSource, nil)
	e.endOfSim = true
}

// MonitorStatistics runs one statistic-monitoring pass. Exported so a
// RunStrategy's control loop can call it after each FireNextEvent.
func (e *Engine) MonitorStatistics() {
	e.monitorStatistics()
}

// --- ancillary operations ---------------------------------------------------

// Run brackets the concrete RunStrategy's DoRun with the endOfSim flag
// flip every public entry point needs: cleared before the run starts, set
// once it returns, regardless of whether DoRun errored.
func (e *Engine) Run() error {
	e.endOfSim = false
	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosRunStarted})

	err := e.strategy.DoRun()

	e.endOfSim = true
	e.InvokeHook(HookCtx{Domain: e, Pos: HookPosRunFinished})

	return err
}

// Advance runs a single event step, for step-through debugging and tests.
// No-op if the simulation has ended or the list is empty.
func (e *Engine) Advance() {
	if e.endOfSim || e.list.Len() == 0 {
		return
	}

	e.FireNextEvent()
	e.monitorStatistics()
}

// StopNow sets endOfSim immediately. Any pending events are discarded the
// next time FinalizeSimulation runs.
func (e *Engine) StopNow() {
	e.endOfSim = true
}

// StopAtTime schedules an END-OF-SIMULATION event at t. Returns a
// LogicError if t is before t_now.
func (e *Engine) StopAtTime(t VTime) error {
	if t < e.simTime {
		return newError("StopAtTime", LogicError, "cannot stop the simulation at a past time")
	}

	e.Schedule(e.endOfSimSource, t, nil)

	return nil
}
