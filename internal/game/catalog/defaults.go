package catalog

import "github.com/kestrel-games/birdclash/internal/game/effect"

// defaultArchetypes returns the built-in six-bird roster. The stat spread is
// deliberately asymmetric: hummingbird trades health for speed and lands its
// ability as five discrete hits; eagle is the slow single-hit nuke; pelican
// tanks and self-heals. The same data ships as YAML under content/birds for
// deployments that tune the roster.
func defaultArchetypes() []*Archetype {
	return []*Archetype{
		{
			ID:          "pigeon",
			Name:        "Pigeon",
			Description: "Street-hardened all-rounder. No weaknesses, no surprises.",
			Stats:       Stats{Health: 100, Attack: 12, Defense: 10, Speed: 10},
			Ability: Ability{
				Name:            "Wing Slap",
				Kind:            effect.KindDamage,
				Power:           25,
				CooldownSeconds: 5,
			},
			Passive: Passive{Name: "Street Smarts", Stream: effect.StreamCoinGain, Multiplier: 1.10},
		},
		{
			ID:          "hummingbird",
			Name:        "Hummingbird",
			Description: "Fragile and blindingly fast. Wins before the enemy turns around.",
			Stats:       Stats{Health: 70, Attack: 10, Defense: 6, Speed: 20},
			Ability: Ability{
				Name:            "Nectar Flurry",
				Kind:            effect.KindDamage,
				Power:           8,
				Hits:            5,
				CooldownSeconds: 8,
			},
			Passive: Passive{Name: "Sugar Rush", Stream: effect.StreamXPGain, Multiplier: 1.10},
		},
		{
			ID:          "eagle",
			Name:        "Eagle",
			Description: "Slow, heavy, and devastating from above.",
			Stats:       Stats{Health: 120, Attack: 18, Defense: 12, Speed: 6},
			Ability: Ability{
				Name:            "Talon Dive",
				Kind:            effect.KindDamage,
				Power:           45,
				CooldownSeconds: 10,
			},
			Passive: Passive{Name: "Apex Predator", Stream: effect.StreamAttack, Multiplier: 1.10},
		},
		{
			ID:          "crow",
			Name:        "Crow",
			Description: "Unsettles its prey before the murder moves in.",
			Stats:       Stats{Health: 90, Attack: 14, Defense: 8, Speed: 12},
			Ability: Ability{
				Name:            "Murder's Omen",
				Kind:            effect.KindDebuff,
				Stream:          effect.StreamAttack,
				Multiplier:      0.8,
				DurationSeconds: 5,
				CooldownSeconds: 9,
			},
			Passive: Passive{Name: "Scavenger", Stream: effect.StreamCoinGain, Multiplier: 1.15},
		},
		{
			ID:          "pelican",
			Name:        "Pelican",
			Description: "A flying fortress with a built-in lunchbox.",
			Stats:       Stats{Health: 130, Attack: 10, Defense: 14, Speed: 5},
			Ability: Ability{
				Name:            "Gullet Gulp",
				Kind:            effect.KindHeal,
				Power:           30,
				CooldownSeconds: 12,
			},
			Passive: Passive{Name: "Thick Plumage", Stream: effect.StreamDamageTaken, Multiplier: 0.90},
		},
		{
			ID:          "owl",
			Name:        "Owl",
			Description: "Patient, silent, and in complete control of the fight.",
			Stats:       Stats{Health: 95, Attack: 13, Defense: 9, Speed: 11},
			Ability: Ability{
				Name:            "Hypnotic Gaze",
				Kind:            effect.KindControl,
				DurationSeconds: 2,
				CooldownSeconds: 12,
			},
			Passive: Passive{Name: "Night Hunter", Stream: effect.StreamSpeed, Multiplier: 1.10},
		},
	}
}

// Default builds the built-in six-bird catalog.
//
// Postcondition: Returns a non-nil Catalog with six archetypes. Panics only
// if the built-in data is itself invalid, which is a programming error.
func Default() *Catalog {
	c, err := New(defaultArchetypes()...)
	if err != nil {
		panic("catalog: built-in roster is invalid: " + err.Error())
	}
	return c
}
