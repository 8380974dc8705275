package des

import "math"

// defaultRelTolerance and defaultAbsTolerance set the bar for "essentially
// equal" fire times used by Reschedule to decide whether a new fire time is
// a no-op. The absolute tolerance must be a few ULPs above zero or a
// reschedule loop that nudges a time by less than float64 precision would
// spin forever re-inserting the same event.
const (
	defaultRelTolerance = 1e-9
	defaultAbsTolerance = 1e-12
)

// essentiallyEqual implements a relative+absolute tolerance predicate: true
// when a and b differ by no more than relTol times the larger magnitude, or
// by no more than absTol.
func essentiallyEqual(a, b, relTol, absTol float64) bool {
	diff := math.Abs(a - b)
	if diff <= absTol {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return diff <= largest*relTol
}
