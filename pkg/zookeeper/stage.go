package zookeeper

// Stage is a step of a report run.
type Stage int

const (
	Idle Stage = iota
	LoadingNames
	StreamingArrivals
	Rendering
	Done
	Failed
)

var stageNames = map[Stage]string{
	Idle:              "idle",
	LoadingNames:      "loading names",
	StreamingArrivals: "streaming arrivals",
	Rendering:         "rendering",
	Done:              "done",
	Failed:            "failed",
}

// String returns a human-readable name of the stage.
func (s Stage) String() string {
	if res, ok := stageNames[s]; ok {
		return res
	}
	return "unknown"
}

// Next returns the stage that follows s on success. Terminal stages
// return themselves.
func (s Stage) Next() Stage {
	switch s {
	case Idle, LoadingNames, StreamingArrivals:
		return s + 1
	case Rendering:
		return Done
	default:
		return s
	}
}

// IsTerminal is true for Done and Failed.
func (s Stage) IsTerminal() bool {
	return s == Done || s == Failed
}
