package services

// runState names the stage a run has reached. The lifecycle is linear
// with no back-edges:
//
//	idle -> loaded -> resolved -> mutated -> persisted
//
// terminating in persisted or failed. A run with nothing to mutate moves
// from resolved straight to persisted without writing.
type runState int

const (
	stateIdle runState = iota
	stateLoaded
	stateResolved
	stateMutated
	statePersisted
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateLoaded:
		return "loaded"
	case stateResolved:
		return "resolved"
	case stateMutated:
		return "mutated"
	case statePersisted:
		return "persisted"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
