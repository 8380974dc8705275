// Package tracing records the events an engine fires to a durable sink, for
// after-the-fact inspection of a run independent of any particular
// statistic. It is an optional, engine-agnostic observer: nothing in the
// des package imports it, and a model wires it in by connecting a des.Sink
// that passes EntryFromEvent's result to a Writer's Write method to the
// event sources it cares about.
package tracing

import (
	"fmt"

	"github.com/dailypips/dcsxx-des/des"
)

// Entry is one recorded firing. Where is the name of the event's source,
// What identifies the event for humans (usually its payload's string form),
// Start is the scheduling time, and End is the fire time.
type Entry struct {
	ID       string
	Where    string
	What     string
	Start    float64
	End      float64
}

// Writer is the behavioral contract every trace sink implements: buffer
// entries, flush them to durable storage, and release any resources held.
type Writer interface {
	Init()
	Write(entry Entry)
	Flush()
	Close()
}

// EntryFromEvent builds an Entry from a fired event, formatting its payload
// with fmt's default verb when one is present.
func EntryFromEvent(evt *des.Event) Entry {
	where := ""
	if evt.Source != nil {
		where = evt.Source.Name()
	}

	what := ""
	if evt.Payload != nil {
		what = formatPayload(evt.Payload)
	}

	return Entry{
		ID:    evt.ID(),
		Where: where,
		What:  what,
		Start: float64(evt.SchedulingTime),
		End:   float64(evt.FireTime()),
	}
}

func formatPayload(payload interface{}) string {
	if s, ok := payload.(interface{ String() string }); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", payload)
}
