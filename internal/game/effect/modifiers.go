package effect

import "math"

// streamMultiplier folds the active multipliers for one stream. Each effect
// contributes Multiplier^Stacks so that restacking compounds rather than
// replaces. Control effects never contribute.
func streamMultiplier(s *ActiveSet, stream Stream) float64 {
	total := 1.0
	for _, ac := range s.effects {
		if ac.Def.Kind == KindControl || ac.Def.Stream != stream {
			continue
		}
		total *= math.Pow(ac.Multiplier, float64(ac.Stacks))
	}
	return total
}

// AttackMultiplier returns the net multiplier on outgoing attack damage from
// all active effects.
//
// Postcondition: Returns > 0.
func AttackMultiplier(s *ActiveSet) float64 {
	return streamMultiplier(s, StreamAttack)
}

// DamageTakenMultiplier returns the net multiplier on incoming damage from
// all active effects.
//
// Postcondition: Returns > 0.
func DamageTakenMultiplier(s *ActiveSet) float64 {
	return streamMultiplier(s, StreamDamageTaken)
}

// SpeedMultiplier returns the net multiplier on effective speed from all
// active effects, including movement effects.
//
// Postcondition: Returns > 0.
func SpeedMultiplier(s *ActiveSet) float64 {
	return streamMultiplier(s, StreamSpeed)
}

// ActionLocked reports whether any active control effect prevents the
// combatant from acting this tick.
func ActionLocked(s *ActiveSet) bool {
	for _, ac := range s.effects {
		if ac.Def.Kind == KindControl {
			return true
		}
	}
	return false
}
