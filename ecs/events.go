package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
)

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventSpawned   = "spawned"
	EventDespawned = "despawned"
	EventDamage    = "damage"
	EventScore     = "score"
	EventLevel     = "level"
)

// BodyKind distinguishes the two simulated body types.
type BodyKind string

const (
	BodyMolecule   BodyKind = "molecule"
	BodyProjectile BodyKind = "projectile"
)

// Cause records which pass created or removed a body.
type Cause string

const (
	CauseTimeline      Cause = "timeline"
	CauseReaction      Cause = "reaction"
	CauseWeapon        Cause = "weapon"
	CausePlayerContact Cause = "player_contact"
)

// SpawnEvent is emitted when a body enters the store.
type SpawnEvent struct {
	Entity  Entity
	Body    BodyKind
	Species chem.Species
	Pos     cp.Vector
	Vel     cp.Vector
	Radius  float64
	Cause   Cause
}

// DespawnEvent is emitted when a body leaves the store.
type DespawnEvent struct {
	Entity  Entity
	Body    BodyKind
	Species chem.Species
	Pos     cp.Vector
	Cause   Cause
}

// DamageEvent asks the player component to lose a life and start its
// invulnerability and stun windows.
type DamageEvent struct {
	Amount          int
	Invulnerability float64
	Stun            float64
	Source          Entity
	Body            BodyKind
}

// ScoreEvent carries a score delta awarded by a weapon strike.
type ScoreEvent struct {
	Delta  int
	Entity Entity
	Body   BodyKind
}

// LevelEvent is emitted when the spawn timeline moves to another level.
type LevelEvent struct {
	Level int
	Cycle int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Emit pushes a typed payload under the given event type.
func Emit(w *World, typ string, data any) {
	w.Events().Push(Event{Type: typ, Data: data})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
