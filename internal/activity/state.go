package activity

// State is the lifecycle position of a single activity run.
type State int

const (
	StateCreated     State = iota // constructed, nothing shown yet
	StateConfiguring              // asking for the duration
	StateReady                    // get-ready spinner
	StateRunning                  // activity loop
	StateEnding                   // closing messages
	StateDone                     // finished; the instance is discarded
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateConfiguring:
		return "configuring"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateEnding:
		return "ending"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
