package des

import "errors"

// Kind classifies the hard errors the engine can return. Soft warnings
// (scheduling from a disabled source, past-time clamps, ...) never produce
// an error value; they are only logged.
type Kind int

const (
	// InvalidArgument marks a nil statistic handle, or unregistering a
	// statistic that was never registered.
	InvalidArgument Kind = iota
	// LogicError marks stop_at_time called with a time in the past.
	LogicError
	// Unsupported marks an operation the engine deliberately does not
	// implement, such as copying a running engine.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case LogicError:
		return "logic error"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the engine's public API. It carries a
// Kind so callers can distinguish a malformed request from an engine
// invariant violation without string matching.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}

	return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Err: errors.New(msg)}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}
