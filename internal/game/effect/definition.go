// Package effect implements the timed buff/debuff/control model shared by
// abilities and passives. Definitions are static data; ActiveSet tracks the
// live effects on one combatant.
package effect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind classifies what an effect does when it lands.
// The zero value (KindUnknown) is intentionally invalid.
type Kind int

const (
	KindUnknown  Kind = iota // zero value; intentionally invalid
	KindDamage               // direct damage, possibly multiple discrete hits
	KindBuff                 // multiplies one of the actor's streams for a duration
	KindDebuff               // multiplies one of the target's streams for a duration
	KindHeal                 // restores health immediately
	KindMovement             // multiplies the actor's speed stream for a duration
	KindControl              // locks the target out of acting for a duration
)

// String returns the lowercase name used in YAML content.
func (k Kind) String() string {
	switch k {
	case KindDamage:
		return "damage"
	case KindBuff:
		return "buff"
	case KindDebuff:
		return "debuff"
	case KindHeal:
		return "heal"
	case KindMovement:
		return "movement"
	case KindControl:
		return "control"
	default:
		return "unknown"
	}
}

// ParseKind converts a YAML kind string into a Kind.
//
// Postcondition: Returns a valid non-KindUnknown Kind, or an error.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "damage":
		return KindDamage, nil
	case "buff":
		return KindBuff, nil
	case "debuff":
		return KindDebuff, nil
	case "heal":
		return KindHeal, nil
	case "movement":
		return KindMovement, nil
	case "control":
		return KindControl, nil
	default:
		return KindUnknown, fmt.Errorf("unknown effect kind %q", s)
	}
}

// Timed reports whether the kind carries a duration and lives in an ActiveSet.
// Damage and Heal resolve instantly and are never tracked.
func (k Kind) Timed() bool {
	switch k {
	case KindBuff, KindDebuff, KindMovement, KindControl:
		return true
	default:
		return false
	}
}

// UnmarshalYAML decodes a Kind from its string form.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a Kind as its string form.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Stream names a multiplied quantity. Buffs, debuffs and passives never touch
// base stats; they multiply the stream at the point it is computed.
type Stream string

const (
	StreamAttack      Stream = "attack"
	StreamDamageTaken Stream = "damage_taken"
	StreamSpeed       Stream = "speed"
	StreamXPGain      Stream = "xp_gain"
	StreamCoinGain    Stream = "coin_gain"
)

// ValidStream reports whether s is one of the recognised stream names.
func ValidStream(s Stream) bool {
	switch s {
	case StreamAttack, StreamDamageTaken, StreamSpeed, StreamXPGain, StreamCoinGain:
		return true
	default:
		return false
	}
}

// Def is the static definition of a timed effect.
type Def struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Kind            Kind    `yaml:"kind"`
	Stream          Stream  `yaml:"stream"`           // which stream the multiplier applies to; empty for control
	Multiplier      float64 `yaml:"multiplier"`       // per-stack stream multiplier; ignored for control
	DurationSeconds float64 `yaml:"duration_seconds"` // simulated seconds; must be > 0
	MaxStacks       int     `yaml:"max_stacks"`       // 0 = unstackable
	LuaOnApply      string  `yaml:"lua_on_apply"`     // optional hook source; may override the multiplier
	LuaOnExpire     string  `yaml:"lua_on_expire"`    // optional hook source
}

// Validate checks that the definition satisfies basic invariants.
//
// Precondition: d must not be nil.
// Postcondition: Returns nil iff ID is non-empty, Kind is a timed kind,
// DurationSeconds > 0, and a buff/debuff/movement names a valid stream with a
// positive multiplier.
func (d *Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("effect def: id must not be empty")
	}
	if !d.Kind.Timed() {
		return fmt.Errorf("effect def %q: kind %q does not carry a duration", d.ID, d.Kind)
	}
	if d.DurationSeconds <= 0 {
		return fmt.Errorf("effect def %q: duration_seconds must be > 0, got %v", d.ID, d.DurationSeconds)
	}
	if d.MaxStacks < 0 {
		return fmt.Errorf("effect def %q: max_stacks must be >= 0, got %d", d.ID, d.MaxStacks)
	}
	if d.Kind == KindControl {
		return nil
	}
	if !ValidStream(d.Stream) {
		return fmt.Errorf("effect def %q: unknown stream %q", d.ID, d.Stream)
	}
	if d.Multiplier <= 0 {
		return fmt.Errorf("effect def %q: multiplier must be > 0, got %v", d.ID, d.Multiplier)
	}
	return nil
}
