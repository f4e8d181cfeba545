package component

// Score accumulates points and survival time for the session.
type Score struct {
	Points       int
	TimeSurvived float64
}

var ScoreComponent = NewComponent[Score]()
