package component

// Frame is the per-tick clock shared by every system.
type Frame struct {
	DT   float64
	Tick uint64
	// PlayerHit latches once a damage event has been raised this frame so a
	// second contact in the same frame cannot deal damage before the player
	// component has started its invulnerability window.
	PlayerHit bool
}

var FrameComponent = NewComponent[Frame]()
