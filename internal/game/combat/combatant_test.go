package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/combat"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// failer is the subset of testing.T that *rapid.T also implements, so
// helpers can be shared with rapid.Check bodies.
type failer interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

func mustArchetype(t failer, id string) *catalog.Archetype {
	t.Helper()
	a, err := catalog.Default().Archetype(id)
	require.NoError(t, err)
	return a
}

func TestNewCombatant(t *testing.T) {
	c := combat.NewCombatant(mustArchetype(t, "pigeon"), nil)
	assert.Equal(t, 100, c.CurrentHealth)
	assert.Equal(t, 100, c.MaxHealth)
	assert.True(t, c.Alive())
	assert.True(t, c.AbilityReady())
	assert.False(t, c.Blocking)
}

func TestCombatant_ApplyDamage_FloorsAtZero(t *testing.T) {
	c := combat.NewCombatant(mustArchetype(t, "hummingbird"), nil)
	assert.Equal(t, 30, c.ApplyDamage(30))
	assert.Equal(t, 40, c.CurrentHealth)
	assert.Equal(t, 40, c.ApplyDamage(500)) // only 40 health left to remove
	assert.Equal(t, 0, c.CurrentHealth)
	assert.False(t, c.Alive())
}

func TestCombatant_Heal_CapsAtMax(t *testing.T) {
	c := combat.NewCombatant(mustArchetype(t, "pelican"), nil)
	c.ApplyDamage(20)
	assert.Equal(t, 20, c.Heal(30))
	assert.Equal(t, 130, c.CurrentHealth)
	assert.Equal(t, 0, c.Heal(10))
}

func TestCombatant_Property_HealthStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := combat.NewCombatant(mustArchetype(rt, "crow"), nil)
		ops := rapid.IntRange(1, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			n := rapid.IntRange(0, 200).Draw(rt, "n")
			if rapid.Bool().Draw(rt, "heal") {
				c.Heal(n)
			} else {
				c.ApplyDamage(n)
			}
			assert.GreaterOrEqual(rt, c.CurrentHealth, 0)
			assert.LessOrEqual(rt, c.CurrentHealth, c.MaxHealth)
		}
	})
}

func TestCombatant_TickTimers(t *testing.T) {
	c := combat.NewCombatant(mustArchetype(t, "eagle"), nil)
	c.CooldownRemaining = 3
	c.TickTimers(1)
	assert.InDelta(t, 2.0, c.CooldownRemaining, 1e-9)
	assert.False(t, c.AbilityReady())
	c.TickTimers(5)
	assert.Zero(t, c.CooldownRemaining)
	assert.True(t, c.AbilityReady())
}

func TestCombatant_TickTimers_ExpiresEffects(t *testing.T) {
	c := combat.NewCombatant(mustArchetype(t, "pigeon"), nil)
	require.NoError(t, c.Effects.Apply(&effect.Def{
		ID: "tailwind", Kind: effect.KindMovement,
		Stream: effect.StreamSpeed, Multiplier: 1.5, DurationSeconds: 2,
	}))
	c.TickTimers(2)
	assert.False(t, c.Effects.Has("tailwind"))
}

func TestCombatant_EffectiveSpeed(t *testing.T) {
	owl := combat.NewCombatant(mustArchetype(t, "owl"), nil)
	// Base 11 with the Night Hunter x1.10 passive.
	assert.InDelta(t, 12.1, owl.EffectiveSpeed(), 1e-9)

	require.NoError(t, owl.Effects.Apply(&effect.Def{
		ID: "tailwind", Kind: effect.KindMovement,
		Stream: effect.StreamSpeed, Multiplier: 2, DurationSeconds: 3,
	}))
	assert.InDelta(t, 24.2, owl.EffectiveSpeed(), 1e-9)
}
