package sim

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// FormatSurvival renders a survival time the way the HUD shows it: seconds
// with two decimals under a minute, then whole minutes and seconds.
func FormatSurvival(t float64) string {
	switch {
	case t < 59:
		return fmt.Sprintf("%.2fs", t)
	case t < 60:
		return "59s"
	}
	minutes := int(math.Floor(t/60)) % 60
	seconds := int(math.Floor(t)) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// Records keeps the best results seen since the process started.
type Records struct {
	HighScore       int
	LongestSurvival float64
	Sessions        int
	// BestSession is the session that set the current high score.
	BestSession uuid.UUID
}

// Submit folds a finished session into the records and reports which
// records it broke.
func (r *Records) Submit(session uuid.UUID, score int, survived float64) (highScore, longest bool) {
	r.Sessions++
	if score > r.HighScore {
		r.HighScore = score
		r.BestSession = session
		highScore = true
	}
	if survived > r.LongestSurvival {
		r.LongestSurvival = survived
		longest = true
	}
	return highScore, longest
}

func (r Records) String() string {
	return fmt.Sprintf("Highscore: %d\nLongest Time Survived: %s", r.HighScore, FormatSurvival(r.LongestSurvival))
}
