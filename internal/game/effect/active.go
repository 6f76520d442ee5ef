package effect

import "fmt"

// Active tracks one applied effect on a combatant.
type Active struct {
	Def        *Def
	Stacks     int
	Remaining  float64 // simulated seconds until expiry
	Multiplier float64 // effective per-stack multiplier; may differ from Def after an on_apply hook
}

// HookEnv is the environment exposed to a Lua effect hook. The hook may
// reassign Multiplier; the other fields are read-only snapshots.
type HookEnv struct {
	Stacks     int
	Remaining  float64
	Multiplier float64
}

// HookRunner executes an effect hook script with the given environment and
// returns the (possibly modified) environment. Implemented by the scripting
// package; an ActiveSet with a nil runner skips hooks entirely.
type HookRunner interface {
	RunHook(source string, env HookEnv) (HookEnv, error)
}

// ActiveSet tracks all timed effects currently applied to one combatant.
// It is not safe for concurrent use; the battle session serialises access.
type ActiveSet struct {
	effects map[string]*Active
	hooks   HookRunner
}

// NewActiveSet creates an empty ActiveSet. hooks may be nil to disable
// scripted effect hooks.
func NewActiveSet(hooks HookRunner) *ActiveSet {
	return &ActiveSet{effects: make(map[string]*Active), hooks: hooks}
}

// Apply adds or refreshes an effect on this combatant.
// If already present, stacks are incremented (capped at MaxStacks; MaxStacks 0
// means unstackable, stacks pinned at 1) and the remaining duration is
// extended to max(existing, def.DurationSeconds). A def with an on_apply hook
// runs it once per Apply; the hook may override the effective multiplier.
//
// Precondition: def must not be nil and must validate.
// Postcondition: Has(def.ID) is true.
func (s *ActiveSet) Apply(def *Def) error {
	if def == nil {
		return fmt.Errorf("effect: Apply requires a non-nil def")
	}
	if err := def.Validate(); err != nil {
		return err
	}

	ac, ok := s.effects[def.ID]
	if ok {
		if def.MaxStacks > 0 && ac.Stacks < def.MaxStacks {
			ac.Stacks++
		}
		if def.DurationSeconds > ac.Remaining {
			ac.Remaining = def.DurationSeconds
		}
	} else {
		ac = &Active{
			Def:        def,
			Stacks:     1,
			Remaining:  def.DurationSeconds,
			Multiplier: def.Multiplier,
		}
		s.effects[def.ID] = ac
	}

	if def.LuaOnApply != "" && s.hooks != nil {
		env, err := s.hooks.RunHook(def.LuaOnApply, HookEnv{
			Stacks:     ac.Stacks,
			Remaining:  ac.Remaining,
			Multiplier: ac.Multiplier,
		})
		if err != nil {
			return fmt.Errorf("effect %q on_apply hook: %w", def.ID, err)
		}
		if env.Multiplier > 0 {
			ac.Multiplier = env.Multiplier
		}
	}
	return nil
}

// Tick advances all effect timers by delta seconds and removes the ones that
// expire, running their on_expire hooks. Returns the IDs of expired effects.
//
// Precondition: delta >= 0.
// Postcondition: For every id in the returned slice, Has(id) is false.
func (s *ActiveSet) Tick(delta float64) []string {
	var expired []string
	for id, ac := range s.effects {
		ac.Remaining -= delta
		if ac.Remaining > 0 {
			continue
		}
		expired = append(expired, id)
		delete(s.effects, id)
		if ac.Def.LuaOnExpire != "" && s.hooks != nil {
			// Expiry hooks are observational; a script error cannot un-expire the effect.
			_, _ = s.hooks.RunHook(ac.Def.LuaOnExpire, HookEnv{
				Stacks:     ac.Stacks,
				Remaining:  0,
				Multiplier: ac.Multiplier,
			})
		}
	}
	return expired
}

// Remove deletes the effect with the given ID. No-op if absent.
//
// Postcondition: Has(id) is false.
func (s *ActiveSet) Remove(id string) {
	delete(s.effects, id)
}

// Has reports whether the effect with id is currently active.
func (s *ActiveSet) Has(id string) bool {
	_, ok := s.effects[id]
	return ok
}

// Stacks returns the current stack count for effect id, or 0 if not present.
func (s *ActiveSet) Stacks(id string) int {
	if ac, ok := s.effects[id]; ok {
		return ac.Stacks
	}
	return 0
}

// Len returns the number of distinct active effects.
func (s *ActiveSet) Len() int { return len(s.effects) }

// All returns a freshly allocated slice of the active effects. The pointed-to
// Active values are shared; callers must not modify them.
func (s *ActiveSet) All() []*Active {
	out := make([]*Active, 0, len(s.effects))
	for _, ac := range s.effects {
		out = append(out, ac)
	}
	return out
}
