package app

// State is the lifecycle position of an App.
type State int

const (
	StateInit State = iota
	StateSchemaReady
	StateIngested
	StateQueried
	StateFailed
	StateTorndown
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateSchemaReady:
		return "schema ready"
	case StateIngested:
		return "ingested"
	case StateQueried:
		return "queried"
	case StateFailed:
		return "failed"
	case StateTorndown:
		return "torndown"
	default:
		return "unknown"
	}
}
