package listing

// State is the lifecycle position of a View.
//
//	Idle -> Loading -> Loaded | Failed
//
// Loaded and Failed are terminal for the View.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
