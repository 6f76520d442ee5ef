package combat

import (
	"fmt"
	"math"

	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// Event records what happened when one action was resolved.
type Event struct {
	// Actor is the acting combatant's archetype id.
	Actor string
	// Action is the resolved action type.
	Action ActionType
	// Ability is the ability name when Action == ActionAbility.
	Ability string
	// Damage is the total health removed from the target by this event.
	Damage int
	// Hits holds the per-hit damage values for multi-hit abilities; nil for
	// actions that deal no damage. len(Hits) may be less than the ability's
	// hit count when the target dies mid-flurry.
	Hits []int
	// Healed is the health restored to the actor by a heal ability.
	Healed int
	// AppliedEffect is the id of the timed effect applied, if any.
	AppliedEffect string
	// Narrative is a human-readable one-line summary.
	Narrative string
}

// Resolve applies one action by actor against target and returns the event.
// Illegal actions (dead actor, ability on cooldown, control-locked actor,
// redundant block toggles) are rejected with *InvalidActionError and mutate
// nothing.
//
// Damage pipeline, floored once per hit after all multipliers:
//
//	attack * attackEffects * attackPassive
//	       * (1 - defense/(defense+K))
//	       * (1 - block) if blocking
//	       * damageTakenEffects * damageTakenPassive
//
// Passives multiply their stream at this computation point and never touch
// base stats, so they compose with timed effects and disappear cleanly.
//
// Precondition: actor, target non-nil and distinct; tuning.DefenseK > 0.
func Resolve(actor, target *Combatant, action ActionType, tuning Tuning) (Event, error) {
	if !actor.Alive() {
		return Event{}, invalidAction(action, "%s is dead", actor.Archetype.ID)
	}
	if action != ActionPass && effect.ActionLocked(actor.Effects) {
		return Event{}, invalidAction(action, "%s is controlled and cannot act", actor.Archetype.ID)
	}

	switch action {
	case ActionPass:
		return Event{
			Actor:     actor.Archetype.ID,
			Action:    ActionPass,
			Narrative: fmt.Sprintf("%s waits.", actor.Archetype.Name),
		}, nil

	case ActionBlock:
		if actor.Blocking {
			return Event{}, invalidAction(action, "%s is already blocking", actor.Archetype.ID)
		}
		actor.Blocking = true
		return Event{
			Actor:     actor.Archetype.ID,
			Action:    ActionBlock,
			Narrative: fmt.Sprintf("%s tucks into a guard.", actor.Archetype.Name),
		}, nil

	case ActionUnblock:
		if !actor.Blocking {
			return Event{}, invalidAction(action, "%s is not blocking", actor.Archetype.ID)
		}
		actor.Blocking = false
		return Event{
			Actor:     actor.Archetype.ID,
			Action:    ActionUnblock,
			Narrative: fmt.Sprintf("%s drops its guard.", actor.Archetype.Name),
		}, nil

	case ActionAttack:
		dealt := resolveHit(actor, target, float64(actor.Archetype.Stats.Attack), tuning)
		return Event{
			Actor:     actor.Archetype.ID,
			Action:    ActionAttack,
			Damage:    dealt,
			Hits:      []int{dealt},
			Narrative: fmt.Sprintf("%s pecks %s for %d.", actor.Archetype.Name, target.Archetype.Name, dealt),
		}, nil

	case ActionAbility:
		return resolveAbility(actor, target, tuning)

	default:
		return Event{}, invalidAction(action, "unrecognised action")
	}
}

// resolveAbility activates the actor's ability. On success the cooldown is
// armed; on rejection nothing changes.
func resolveAbility(actor, target *Combatant, tuning Tuning) (Event, error) {
	ability := actor.Archetype.Ability
	if !actor.AbilityReady() {
		return Event{}, invalidAction(ActionAbility,
			"%s is on cooldown for another %.1fs", ability.Name, actor.CooldownRemaining)
	}

	ev := Event{
		Actor:   actor.Archetype.ID,
		Action:  ActionAbility,
		Ability: ability.Name,
	}

	switch ability.Kind {
	case effect.KindDamage:
		// Discrete hits, each resolved through the full pipeline; remaining
		// hits are wasted once the target drops.
		for i := 0; i < ability.HitCount() && target.Alive(); i++ {
			dealt := resolveHit(actor, target, float64(ability.Power), tuning)
			ev.Hits = append(ev.Hits, dealt)
			ev.Damage += dealt
		}
		ev.Narrative = fmt.Sprintf("%s unleashes %s on %s for %d (%d hits).",
			actor.Archetype.Name, ability.Name, target.Archetype.Name, ev.Damage, len(ev.Hits))

	case effect.KindHeal:
		ev.Healed = actor.Heal(ability.Power)
		ev.Narrative = fmt.Sprintf("%s restores %d health with %s.",
			actor.Archetype.Name, ev.Healed, ability.Name)

	case effect.KindBuff, effect.KindMovement:
		def := ability.EffectDef(actor.Archetype.ID)
		if err := actor.Effects.Apply(def); err != nil {
			return Event{}, err
		}
		ev.AppliedEffect = def.ID
		ev.Narrative = fmt.Sprintf("%s surges with %s.", actor.Archetype.Name, ability.Name)

	case effect.KindDebuff, effect.KindControl:
		def := ability.EffectDef(actor.Archetype.ID)
		if err := target.Effects.Apply(def); err != nil {
			return Event{}, err
		}
		ev.AppliedEffect = def.ID
		ev.Narrative = fmt.Sprintf("%s afflicts %s with %s.",
			actor.Archetype.Name, target.Archetype.Name, ability.Name)

	default:
		return Event{}, invalidAction(ActionAbility, "ability %q has no effect kind", ability.Name)
	}

	actor.CooldownRemaining = ability.CooldownSeconds
	return ev, nil
}

// resolveHit pushes one hit of base damage through the full pipeline and
// applies it to the target, returning the health actually removed.
func resolveHit(actor, target *Combatant, base float64, tuning Tuning) int {
	dmg := base
	dmg *= effect.AttackMultiplier(actor.Effects)
	dmg *= actor.Archetype.PassiveMultiplier(effect.StreamAttack)
	dmg *= 1 - tuning.DamageReduction(target.Archetype.Stats.Defense)
	if target.Blocking {
		dmg *= 1 - tuning.BlockReduction
	}
	dmg *= effect.DamageTakenMultiplier(target.Effects)
	dmg *= target.Archetype.PassiveMultiplier(effect.StreamDamageTaken)
	if dmg < 0 {
		dmg = 0
	}
	return target.ApplyDamage(int(math.Floor(dmg)))
}
