package smooth

// Phase is a state of a filter run.
type Phase int

// Runs move Idle -> Requested -> Markers? -> Forces? -> Analog? -> Done,
// or to Failed from any phase.
const (
	PhaseIdle Phase = iota
	PhaseRequested
	PhaseMarkers
	PhaseForces
	PhaseAnalog
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRequested:
		return "requested"
	case PhaseMarkers:
		return "markers"
	case PhaseForces:
		return "forces"
	case PhaseAnalog:
		return "analog"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
