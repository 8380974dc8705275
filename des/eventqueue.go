package des

import "container/heap"

// EventList is the future-event list: a minimum-priority queue over *Event
// keyed on fire time, with stable FIFO ordering among events sharing a fire
// time. Push, Pop and Erase all run in O(log n).
//
// This list is not safe for concurrent use: an Engine drives its EventList
// from a single goroutine, so no locking is done here.
type EventList struct {
	h eventHeap
	// seqCounter is a monotonically increasing insertion counter used as the
	// heap's secondary sort key, so two events scheduled for the same
	// fire time pop in the order they were pushed.
	seqCounter uint64
}

// NewEventList creates an empty EventList.
func NewEventList() *EventList {
	l := &EventList{}
	heap.Init(&l.h)

	return l
}

// Push inserts evt in O(log n), assigning it a fresh FIFO sequence number.
// Re-pushing an event (as Reschedule does, after Erase) gives it a new,
// later sequence number: it is treated as a fresh arrival for tie-breaking.
func (l *EventList) Push(evt *Event) {
	l.seqCounter++
	evt.seq = l.seqCounter
	heap.Push(&l.h, evt)
}

// Pop removes and returns the earliest event (FIFO among ties), or nil if
// the list is empty.
func (l *EventList) Pop() *Event {
	if l.h.Len() == 0 {
		return nil
	}

	return heap.Pop(&l.h).(*Event)
}

// Top returns the earliest event without removing it, or nil if empty.
func (l *EventList) Top() *Event {
	if l.h.Len() == 0 {
		return nil
	}

	return l.h[0]
}

// Len returns the number of pending events.
func (l *EventList) Len() int {
	return l.h.Len()
}

// Erase removes evt by identity in O(log n). No-op if evt is not currently
// in the list, which lets callers erase defensively.
func (l *EventList) Erase(evt *Event) {
	if evt.index < 0 || evt.index >= len(l.h) || l.h[evt.index] != evt {
		return
	}

	heap.Remove(&l.h, evt.index)
	evt.index = -1
}

// Clear drops all pending events.
func (l *EventList) Clear() {
	for _, evt := range l.h {
		evt.index = -1
	}

	l.h = l.h[:0]
}

// eventHeap implements container/heap.Interface over *Event, ordered by
// fire time and then by insertion sequence.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].fireTime != h[j].fireTime {
		return h[i].fireTime < h[j].fireTime
	}

	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *eventHeap) Push(x interface{}) {
	evt := x.(*Event)
	evt.index = len(*h)
	*h = append(*h, evt)
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	evt := old[n-1]
	old[n-1] = nil
	evt.index = -1
	*h = old[:n-1]

	return evt
}
