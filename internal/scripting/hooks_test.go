package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-games/birdclash/internal/game/effect"
	"github.com/kestrel-games/birdclash/internal/scripting"
)

func TestHookRunner_OverridesMultiplier(t *testing.T) {
	r := scripting.NewHookRunner(0)
	env, err := r.RunHook("multiplier = multiplier * 2", effect.HookEnv{
		Stacks: 1, Remaining: 5, Multiplier: 1.25,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, env.Multiplier, 1e-9)
}

func TestHookRunner_ReadsStacksAndRemaining(t *testing.T) {
	r := scripting.NewHookRunner(0)
	env, err := r.RunHook("multiplier = 1 + 0.1 * stacks", effect.HookEnv{
		Stacks: 3, Remaining: 4, Multiplier: 1.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.3, env.Multiplier, 1e-9)
	assert.Equal(t, 3, env.Stacks)
	assert.InDelta(t, 4.0, env.Remaining, 1e-9)
}

func TestHookRunner_NonNumericMultiplierIgnored(t *testing.T) {
	r := scripting.NewHookRunner(0)
	env, err := r.RunHook(`multiplier = "loud"`, effect.HookEnv{Multiplier: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, env.Multiplier, 1e-9)
}

func TestHookRunner_EmptySource(t *testing.T) {
	r := scripting.NewHookRunner(0)
	_, err := r.RunHook("", effect.HookEnv{})
	assert.Error(t, err)
}

func TestHookRunner_SyntaxErrorReported(t *testing.T) {
	r := scripting.NewHookRunner(0)
	_, err := r.RunHook("multiplier = = 2", effect.HookEnv{Multiplier: 1})
	assert.Error(t, err)
}

func TestHookRunner_InstructionLimitTerminatesLoops(t *testing.T) {
	r := scripting.NewHookRunner(1000)
	_, err := r.RunHook("while true do end", effect.HookEnv{Multiplier: 1})
	assert.Error(t, err)
}

func TestHookRunner_DangerousGlobalsStripped(t *testing.T) {
	r := scripting.NewHookRunner(0)
	for _, g := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		_, err := r.RunHook(g+`("x")`, effect.HookEnv{Multiplier: 1})
		assert.Error(t, err, "global %q should be stripped", g)
	}
}
