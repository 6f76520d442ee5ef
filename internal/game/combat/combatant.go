// Package combat implements the deterministic stat/ability resolution model:
// given two combatants and a discrete action, it computes damage, cooldown
// transitions, and applied effects.
package combat

import (
	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// Combatant is one side's mutable in-battle state, derived from an archetype.
// The archetype is shared and read-only; everything else is owned by the
// battle session for the battle's duration.
type Combatant struct {
	Archetype *catalog.Archetype
	// CurrentHealth is floored at 0; the combatant is alive iff it is > 0.
	CurrentHealth int
	MaxHealth     int
	// CooldownRemaining is simulated seconds until the ability is ready.
	CooldownRemaining float64
	Blocking          bool
	Effects           *effect.ActiveSet
}

// NewCombatant builds battle-ready state from an archetype. hooks may be nil
// to disable scripted effect hooks.
//
// Precondition: archetype must be non-nil and valid.
// Postcondition: CurrentHealth == MaxHealth == archetype health; ability is
// ready (no cooldown); no active effects.
func NewCombatant(archetype *catalog.Archetype, hooks effect.HookRunner) *Combatant {
	return &Combatant{
		Archetype:     archetype,
		CurrentHealth: archetype.Stats.Health,
		MaxHealth:     archetype.Stats.Health,
		Effects:       effect.NewActiveSet(hooks),
	}
}

// Alive reports whether the combatant can still fight.
//
// Postcondition: Returns true iff CurrentHealth > 0.
func (c *Combatant) Alive() bool { return c.CurrentHealth > 0 }

// ApplyDamage reduces CurrentHealth by amount, flooring at zero, and returns
// the health actually removed.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHealth >= 0; returned value <= amount.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.CurrentHealth
	c.CurrentHealth -= amount
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
	return before - c.CurrentHealth
}

// Heal restores health up to MaxHealth and returns the health actually
// restored.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHealth <= MaxHealth.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.CurrentHealth
	c.CurrentHealth += amount
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
	return c.CurrentHealth - before
}

// EffectiveSpeed returns base speed scaled by movement effects and the speed
// passive. Used to order action resolution within a tick.
//
// Postcondition: Returns > 0 for any valid archetype.
func (c *Combatant) EffectiveSpeed() float64 {
	return float64(c.Archetype.Stats.Speed) *
		effect.SpeedMultiplier(c.Effects) *
		c.Archetype.PassiveMultiplier(effect.StreamSpeed)
}

// AbilityReady reports whether the ability can be activated this tick.
func (c *Combatant) AbilityReady() bool { return c.CooldownRemaining <= 0 }

// TickTimers advances the ability cooldown and all effect timers by delta
// simulated seconds.
//
// Precondition: delta >= 0.
// Postcondition: CooldownRemaining >= 0.
func (c *Combatant) TickTimers(delta float64) {
	c.CooldownRemaining -= delta
	if c.CooldownRemaining < 0 {
		c.CooldownRemaining = 0
	}
	c.Effects.Tick(delta)
}
