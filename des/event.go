package des

// VTime is the simulated-time type. The engine never interprets it besides
// comparing and advancing it; models are free to treat it as seconds, ticks,
// or anything else that behaves like a real number.
type VTime float64

// Event is an immutable record of a scheduled firing. Identity is by
// pointer, not by value: two distinct events with identical times are
// distinguishable, and a Handle is exactly a *Event.
type Event struct {
	// Source is the EventSource that will fire this event.
	Source *EventSource

	// SchedulingTime is the clock value when the event was inserted.
	SchedulingTime VTime

	// Payload is an optional type-erased value sinks can type-assert on.
	Payload interface{}

	// Embedded is non-nil only for bracket events (before/after-event-firing);
	// it references the user event being bracketed.
	Embedded *Event

	id       string
	fireTime VTime

	// seq is the insertion sequence used to break ties between events with
	// equal fire times (stable FIFO). It is reassigned on every insertion,
	// including re-insertion by Reschedule, so a rescheduled event is
	// treated as a fresh arrival for tie-breaking purposes.
	seq uint64

	// index is the position of this event in the EventList's backing heap,
	// maintained by container/heap so Erase can find it in O(1) plus the
	// cost of sift-up/down. -1 means "not currently in the list".
	index int
}

// FireTime returns the simulated time at which the event will run (or did
// run, once popped).
func (e *Event) FireTime() VTime {
	return e.fireTime
}

// ID returns the engine-assigned identifier of the event, used only for
// diagnostics and tracing.
func (e *Event) ID() string {
	return e.id
}

// IsBracket reports whether this is a BEFORE/AFTER-event-firing event
// carrying a reference to the event it brackets.
func (e *Event) IsBracket() bool {
	return e.Embedded != nil
}

// Handle is the type subscribers hold to reschedule or cancel an event they
// scheduled. It is exactly the Event pointer handed back by Schedule.
type Handle = *Event
