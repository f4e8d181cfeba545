package system

import (
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

// damagePlayer raises one damage event unless the player is invulnerable or
// has already been hit this frame.
func damagePlayer(w *ecs.World, frame *component.Frame, snap *component.PlayerSnapshot, spec prefabs.PlayerSpec, source ecs.Entity, body ecs.BodyKind) bool {
	if snap.Invulnerable || frame.PlayerHit {
		return false
	}
	frame.PlayerHit = true
	ecs.Emit(w, ecs.EventDamage, ecs.DamageEvent{
		Amount:          1,
		Invulnerability: spec.Invulnerability,
		Stun:            spec.Stun,
		Source:          source,
		Body:            body,
	})
	return true
}
