// Package catalog provides the playable bird archetype data model, its YAML
// content pipeline, and the built-in default roster.
package catalog

import (
	"fmt"
	"strings"

	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// Stats holds the four base stats of an archetype. Base stats are immutable
// after load; buffs and passives multiply derived streams instead.
type Stats struct {
	Health  int `yaml:"health"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}

// Ability is an archetype's single active ability. The same shape covers
// single-hit damage, multi-hit damage (Hits > 1), heals, and the timed effect
// kinds; a "five separate hits" ability is just Hits=5 with per-hit Power.
type Ability struct {
	Name string      `yaml:"name"`
	Kind effect.Kind `yaml:"kind"`
	// Power is the damage per hit (damage kind) or the amount healed (heal kind).
	Power int `yaml:"power"`
	// Hits is the number of discrete hits for a damage ability; 0 means 1.
	Hits int `yaml:"hits"`
	// Stream, Multiplier and DurationSeconds describe the applied effect for
	// buff/debuff/movement/control kinds.
	Stream          effect.Stream `yaml:"stream"`
	Multiplier      float64       `yaml:"multiplier"`
	DurationSeconds float64       `yaml:"duration_seconds"`
	CooldownSeconds float64       `yaml:"cooldown_seconds"`
	LuaOnApply      string        `yaml:"lua_on_apply"`
	LuaOnExpire     string        `yaml:"lua_on_expire"`
}

// HitCount returns the number of discrete hits the ability lands.
//
// Postcondition: Returns >= 1.
func (a Ability) HitCount() int {
	if a.Hits < 1 {
		return 1
	}
	return a.Hits
}

// EffectDef builds the timed effect definition this ability applies, scoped
// by the owning archetype's id.
//
// Precondition: a.Kind must be a timed kind (buff, debuff, movement, control).
// Postcondition: Returns a def whose ID is stable for (archetypeID, ability).
func (a Ability) EffectDef(archetypeID string) *effect.Def {
	return &effect.Def{
		ID:              archetypeID + "/" + slug(a.Name),
		Name:            a.Name,
		Kind:            a.Kind,
		Stream:          a.Stream,
		Multiplier:      a.Multiplier,
		DurationSeconds: a.DurationSeconds,
		LuaOnApply:      a.LuaOnApply,
		LuaOnExpire:     a.LuaOnExpire,
	}
}

// Passive is an archetype's always-on stream multiplier. It applies at the
// point the stream is computed, never by mutating base stats.
type Passive struct {
	Name       string        `yaml:"name"`
	Stream     effect.Stream `yaml:"stream"`
	Multiplier float64       `yaml:"multiplier"`
}

// Archetype defines one playable bird, loaded from YAML or built in. It is
// constructed once and never mutated; battle state lives in combat.Combatant.
type Archetype struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Stats       Stats   `yaml:"stats"`
	Ability     Ability `yaml:"ability"`
	Passive     Passive `yaml:"passive"`
}

// Validate checks that the archetype satisfies basic invariants.
//
// Precondition: a must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, all base stats
// are >= 1, the ability is coherent for its kind, and the passive names a
// valid stream with a positive multiplier.
func (a *Archetype) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("archetype: id must not be empty")
	}
	if a.Name == "" {
		return fmt.Errorf("archetype %q: name must not be empty", a.ID)
	}
	if a.Stats.Health < 1 {
		return fmt.Errorf("archetype %q: stats.health must be >= 1, got %d", a.ID, a.Stats.Health)
	}
	if a.Stats.Attack < 1 {
		return fmt.Errorf("archetype %q: stats.attack must be >= 1, got %d", a.ID, a.Stats.Attack)
	}
	if a.Stats.Defense < 0 {
		return fmt.Errorf("archetype %q: stats.defense must be >= 0, got %d", a.ID, a.Stats.Defense)
	}
	if a.Stats.Speed < 1 {
		return fmt.Errorf("archetype %q: stats.speed must be >= 1, got %d", a.ID, a.Stats.Speed)
	}
	if err := a.validateAbility(); err != nil {
		return err
	}
	if a.Passive.Name != "" {
		if !effect.ValidStream(a.Passive.Stream) {
			return fmt.Errorf("archetype %q: passive %q has unknown stream %q", a.ID, a.Passive.Name, a.Passive.Stream)
		}
		if a.Passive.Multiplier <= 0 {
			return fmt.Errorf("archetype %q: passive %q multiplier must be > 0, got %v", a.ID, a.Passive.Name, a.Passive.Multiplier)
		}
	}
	return nil
}

func (a *Archetype) validateAbility() error {
	ab := a.Ability
	if ab.Name == "" {
		return fmt.Errorf("archetype %q: ability.name must not be empty", a.ID)
	}
	if ab.CooldownSeconds <= 0 {
		return fmt.Errorf("archetype %q: ability.cooldown_seconds must be > 0, got %v", a.ID, ab.CooldownSeconds)
	}
	switch ab.Kind {
	case effect.KindDamage:
		if ab.Power < 1 {
			return fmt.Errorf("archetype %q: damage ability power must be >= 1, got %d", a.ID, ab.Power)
		}
		if ab.Hits < 0 {
			return fmt.Errorf("archetype %q: ability hits must be >= 0, got %d", a.ID, ab.Hits)
		}
	case effect.KindHeal:
		if ab.Power < 1 {
			return fmt.Errorf("archetype %q: heal ability power must be >= 1, got %d", a.ID, ab.Power)
		}
	case effect.KindBuff, effect.KindDebuff, effect.KindMovement, effect.KindControl:
		if err := ab.EffectDef(a.ID).Validate(); err != nil {
			return fmt.Errorf("archetype %q: %w", a.ID, err)
		}
	default:
		return fmt.Errorf("archetype %q: ability.kind must be set", a.ID)
	}
	return nil
}

// PassiveMultiplier returns the archetype's passive multiplier for the given
// stream, or 1.0 when the passive targets a different stream.
//
// Postcondition: Returns > 0.
func (a *Archetype) PassiveMultiplier(stream effect.Stream) float64 {
	if a.Passive.Name != "" && a.Passive.Stream == stream && a.Passive.Multiplier > 0 {
		return a.Passive.Multiplier
	}
	return 1.0
}

// slug lowercases a display name and replaces spaces for use in effect IDs.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
