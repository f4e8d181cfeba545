package component

import "github.com/jakecoffman/cp"

// Insets are the amounts the playable interior is recessed from each edge of
// the arena to leave room for the HUD frame.
type Insets struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Arena stores the world-space bounds of the reactor and its emission
// aperture. It never changes during a session.
type Arena struct {
	Bounds  cp.BB
	Insets  Insets
	Emitter cp.Vector
}

// Interior returns the box a circle of the given radius must keep its center
// inside so that it stays fully within the playable area.
func (a Arena) Interior(radius float64) cp.BB {
	return cp.BB{
		L: a.Bounds.L + a.Insets.Left + radius,
		B: a.Bounds.B + a.Insets.Bottom + radius,
		R: a.Bounds.R - a.Insets.Right - radius,
		T: a.Bounds.T - a.Insets.Top - radius,
	}
}

var ArenaComponent = NewComponent[Arena]()
