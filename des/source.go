package des

// Sink is a callable invoked when its EventSource fires an event. ctx gives
// the sink read access to engine state and a narrow scheduling API; it must
// not be retained past the call.
type Sink func(evt *Event, ctx *EngineContext)

// SinkHandle identifies a connected sink so it can later be disconnected.
type SinkHandle uint64

type sinkSlot struct {
	handle SinkHandle
	fn     Sink
}

// EventSource is a named emission point with an enabled/disabled flag and an
// ordered list of sinks. Equality is by identity: two sources with the same
// name are still distinct sources.
//
// Sinks may be added or removed at any time, including from inside a firing
// sink; additions take effect on the next firing, matching a copy-on-write
// connect so Fire's range over the slice it started with is never mutated
// mid-iteration.
type EventSource struct {
	name    string
	enabled bool
	sinks   []sinkSlot
	nextID  SinkHandle
}

// NewEventSource creates a new, enabled EventSource with no sinks attached.
func NewEventSource(name string) *EventSource {
	return &EventSource{name: name, enabled: true}
}

// Name returns the human-readable name of the source.
func (s *EventSource) Name() string {
	return s.name
}

// Connect appends a sink to the end of the connection order and returns a
// handle that Disconnect can later use to remove it.
func (s *EventSource) Connect(sink Sink) SinkHandle {
	s.nextID++
	h := s.nextID

	sinks := make([]sinkSlot, len(s.sinks), len(s.sinks)+1)
	copy(sinks, s.sinks)
	s.sinks = append(sinks, sinkSlot{handle: h, fn: sink})

	return h
}

// Disconnect removes a previously connected sink. No-op if the handle is not
// currently connected (e.g. it was already disconnected).
func (s *EventSource) Disconnect(handle SinkHandle) {
	for i, slot := range s.sinks {
		if slot.handle == handle {
			sinks := make([]sinkSlot, 0, len(s.sinks)-1)
			sinks = append(sinks, s.sinks[:i]...)
			s.sinks = append(sinks, s.sinks[i+1:]...)

			return
		}
	}
}

// Enable turns the source on. Events scheduled from a disabled source are
// never inserted; see Engine.Schedule.
func (s *EventSource) Enable() {
	s.enabled = true
}

// Disable turns the source off.
func (s *EventSource) Disable() {
	s.enabled = false
}

// Enabled reports the current enabled/disabled flag.
func (s *EventSource) Enabled() bool {
	return s.enabled
}

// Empty reports whether the source has no connected sinks. The engine uses
// this to decide whether to synthesize a bracket event at all.
func (s *EventSource) Empty() bool {
	return len(s.sinks) == 0
}

// Fire invokes each connected sink in connection order.
func (s *EventSource) Fire(evt *Event, ctx *EngineContext) {
	for _, slot := range s.sinks {
		slot.fn(evt, ctx)
	}
}

// String implements fmt.Stringer, so an EventSource can be dropped straight
// into a log field or format string.
func (s *EventSource) String() string {
	return s.name
}
