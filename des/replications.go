package des

import "github.com/sirupsen/logrus"

// EstimateProvider supplies the cross-replication estimate and its standard
// deviation that a TerminationDetector uses to decide whether enough
// replications have run. A ReplicationsEngine with no provider passes zero
// values to Detect, which is sufficient for a ConstantReplicationsDetector
// (it ignores its arguments) but not for an adaptive detector.
type EstimateProvider interface {
	Estimate() (value, stddev float64)
}

// ReplicationsEngine runs independent replications of the same simulation:
// it repeats the single-run body R times, where R is decided by a
// TerminationDetector, and does not fully reset statistics between
// replications.
type ReplicationsEngine struct {
	*Engine

	detector  TerminationDetector
	estimator EstimateProvider

	completed int
}

// NewReplicationsEngine creates a ReplicationsEngine driven by detector. An
// estimator may be nil, in which case Estimate() reports (0, 0) on every
// replication, which is correct for a ConstantReplicationsDetector.
func NewReplicationsEngine(detector TerminationDetector, estimator EstimateProvider) *ReplicationsEngine {
	if detector == nil {
		detector = NewConstantReplicationsDetector(0)
	}

	e := &ReplicationsEngine{Engine: newEngine(), detector: detector, estimator: estimator}
	e.Engine.strategy = e

	return e
}

// CompletedReplications returns how many replications have finished so far
// in the current Run call.
func (e *ReplicationsEngine) CompletedReplications() int {
	return e.completed
}

// DoRun implements RunStrategy: run replications until the detector
// reports either that it has detected the required count and that count
// has been reached, or that it has aborted.
func (e *ReplicationsEngine) DoRun() error {
	e.completed = 0
	e.detector.Reset()

	for {
		if e.completed == 0 {
			e.PrepareSimulation()
		} else {
			e.PrepareNextReplication()
		}

		for !e.EndOfSimulation() && e.PendingEvents() > 0 {
			e.FireNextEvent()
			e.MonitorStatistics()
		}

		e.FinalizeSimulation()
		e.completed++

		var estimate, stddev float64
		if e.estimator != nil {
			estimate, stddev = e.estimator.Estimate()
		}

		e.detector.Detect(e.completed, estimate, stddev)

		if e.detector.Aborted() {
			logrus.WithField("replications", e.completed).
				Warn("replications detector aborted before convergence")

			return newError("DoRun", LogicError, "termination detector aborted")
		}

		if e.detector.Detected() && e.completed >= e.detector.EstimatedNumber() {
			return nil
		}
	}
}
