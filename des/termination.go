package des

// TerminationDetector is the pluggable policy an independent-replications
// engine consults to decide how many replications to run. It watches the
// running estimate and its standard deviation across completed replications
// and decides when enough have accumulated.
type TerminationDetector interface {
	// Detect is called after each completed replication with the
	// replication count so far, the current cross-replication estimate,
	// and its standard deviation. It returns whether that was enough
	// information to update the detector's internal state productively;
	// the authoritative stop signal is Detected, not this return value.
	Detect(rCur int, estimate, stddev float64) bool

	// Detected reports whether the detector has decided the target number
	// of replications is now known.
	Detected() bool

	// Aborted reports whether the detector gave up (e.g. the estimate
	// never stabilized) rather than converging normally.
	Aborted() bool

	// EstimatedNumber returns the detector's current estimate of how many
	// replications are needed in total.
	EstimatedNumber() int

	// Reset clears any accumulated history, for reuse across experiments.
	Reset()
}

// ConstantReplicationsDetector is a TerminationDetector that always reports
// "detected" with a fixed, caller-supplied replication count, ignoring every
// observation passed to Detect: Detect is a no-op, Detected is always true,
// and EstimatedNumber always returns the configured count.
type ConstantReplicationsDetector struct {
	r int
}

// DefaultReplicationCount is the sentinel used when no explicit count is
// supplied: the detector requests an effectively unbounded number of
// replications, relying on the caller to stop the engine by some other
// means (e.g. a wall-clock or event-count budget layered on top).
const DefaultReplicationCount = int(^uint(0) >> 1)

// NewConstantReplicationsDetector creates a detector that always reports n
// replications as sufficient. A non-positive n is replaced with
// DefaultReplicationCount.
func NewConstantReplicationsDetector(n int) *ConstantReplicationsDetector {
	if n <= 0 {
		n = DefaultReplicationCount
	}

	return &ConstantReplicationsDetector{r: n}
}

// Detect always returns true; the constant detector needs no observations.
func (d *ConstantReplicationsDetector) Detect(rCur int, estimate, stddev float64) bool {
	return true
}

// Detected always returns true.
func (d *ConstantReplicationsDetector) Detected() bool {
	return true
}

// Aborted always returns false: the constant detector never gives up.
func (d *ConstantReplicationsDetector) Aborted() bool {
	return false
}

// EstimatedNumber returns the configured replication count.
func (d *ConstantReplicationsDetector) EstimatedNumber() int {
	return d.r
}

// Reset is a no-op: the constant detector has no history to clear.
func (d *ConstantReplicationsDetector) Reset() {}
