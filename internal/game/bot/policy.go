// Package bot provides a deterministic opponent policy for driving the
// non-player side of a battle.
package bot

import (
	"github.com/kestrel-games/birdclash/internal/game/combat"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// DefaultBlockThreshold is the health fraction below which the policy turtles.
const DefaultBlockThreshold = 0.25

// Policy picks one action per tick: ability when ready, block when badly
// hurt, otherwise basic attack. Raising the guard does not stop the policy
// from attacking; blocking only dampens incoming damage. Deterministic on
// purpose so simulated battles are reproducible.
type Policy struct {
	// BlockThreshold is the health fraction below which the policy blocks.
	BlockThreshold float64
}

// New returns a Policy with the default block threshold.
func New() *Policy {
	return &Policy{BlockThreshold: DefaultBlockThreshold}
}

// ChooseAction picks the next action for self against enemy. The returned
// action is always legal for the state the policy observed; it can still be
// rejected when the enemy lands a control effect earlier in the same tick.
//
// Precondition: self and enemy must be non-nil.
func (p *Policy) ChooseAction(self, enemy *combat.Combatant) combat.ActionType {
	if !self.Alive() || effect.ActionLocked(self.Effects) {
		return combat.ActionPass
	}

	hurt := float64(self.CurrentHealth) < p.BlockThreshold*float64(self.MaxHealth)
	if self.Blocking {
		if !hurt {
			return combat.ActionUnblock
		}
		// Keep fighting from behind the guard. Two policies that both go
		// fully passive while guarding would stall a mirror match forever.
		if self.AbilityReady() {
			return combat.ActionAbility
		}
		return combat.ActionAttack
	}
	if self.AbilityReady() {
		return combat.ActionAbility
	}
	if hurt {
		return combat.ActionBlock
	}
	return combat.ActionAttack
}
