package des

// HookPos enumerates the instrumentation points a Hookable exposes. This is
// a lighter-weight tap than the BEFORE/AFTER-event-firing bracket sources on
// Engine: those are ordinary EventSources any sink can subscribe to and are
// part of the event stream itself, while a hook is a callback at a handful
// of engine lifecycle points, for tracers that don't need to see every
// (event, ctx) pair as a simulated event.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site at which a hook fired.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is implemented by anything that accepts Hooks.
type Hookable interface {
	AcceptHook(hook Hook)
}

// HookPosEventScheduled fires whenever Engine.Schedule successfully inserts
// an event (after the disabled-source and past-time checks).
var HookPosEventScheduled = &HookPos{Name: "EventScheduled"}

// HookPosRunStarted fires once, at the top of Engine.Run, before
// the RunStrategy's DoRun is invoked.
var HookPosRunStarted = &HookPos{Name: "RunStarted"}

// HookPosRunFinished fires once, after DoRun returns and endOfSim has
// been set back to true.
var HookPosRunFinished = &HookPos{Name: "RunFinished"}

// Hook is a short piece of program invoked by a Hookable at one of its
// HookPos points.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc adapts a plain function to the Hook interface, mirroring
// http.HandlerFunc, so callers don't need to declare a named type just to
// AcceptHook a closure.
type HookFunc func(ctx HookCtx)

// Func implements Hook.
func (f HookFunc) Func(ctx HookCtx) { f(ctx) }

// HookableBase provides the bookkeeping other types embed to implement
// Hookable.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// InvokeHook triggers the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
