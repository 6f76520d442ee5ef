package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// HookRunner executes effect hook scripts in a fresh sandboxed Lua state per
// invocation, so no script can leak globals into another. Hooks see three
// numeric globals (stacks, remaining, multiplier) and may reassign
// multiplier to override the effect's per-stack multiplier.
type HookRunner struct {
	instLimit int
}

// NewHookRunner creates a HookRunner with the given per-hook instruction
// limit. Zero uses DefaultInstructionLimit.
func NewHookRunner(instLimit int) *HookRunner {
	return &HookRunner{instLimit: instLimit}
}

// RunHook executes source with env exposed as globals and returns the updated
// environment.
//
// Precondition: source must be non-empty.
// Postcondition: On success, the returned env carries the script's final
// multiplier global when it is a positive number; stacks and remaining are
// returned unchanged.
func (r *HookRunner) RunHook(source string, env effect.HookEnv) (effect.HookEnv, error) {
	if source == "" {
		return env, fmt.Errorf("scripting: hook source must not be empty")
	}

	L := NewSandboxedState(r.instLimit)
	defer L.Close()

	L.SetGlobal("stacks", lua.LNumber(env.Stacks))
	L.SetGlobal("remaining", lua.LNumber(env.Remaining))
	L.SetGlobal("multiplier", lua.LNumber(env.Multiplier))

	if err := L.DoString(source); err != nil {
		return env, fmt.Errorf("scripting: hook failed: %w", err)
	}

	if n, ok := L.GetGlobal("multiplier").(lua.LNumber); ok && float64(n) > 0 {
		env.Multiplier = float64(n)
	}
	return env, nil
}
