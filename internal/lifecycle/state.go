package lifecycle

// State represents the lifecycle phase of the process. States only ever
// advance; there is no path backwards.
type State int

const (
	StateUnstarted State = iota
	StateInitialized
	StateRunning
	StateTerminating
	StateShutDown
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "Unstarted"
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateTerminating:
		return "Terminating"
	case StateShutDown:
		return "ShutDown"
	default:
		return "Unknown"
	}
}
