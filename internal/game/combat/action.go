package combat

import "fmt"

// ActionType identifies what a combatant intends to do on a tick.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack                    // basic attack against the opposing combatant
	ActionAbility                   // activate the archetype's ability
	ActionBlock                     // raise guard; incoming damage reduced until unblock
	ActionUnblock                   // drop guard
	ActionPass                      // do nothing this tick
)

// String returns the human-readable name of the ActionType.
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionAbility:
		return "ability"
	case ActionBlock:
		return "block"
	case ActionUnblock:
		return "unblock"
	case ActionPass:
		return "pass"
	default:
		return "unknown"
	}
}

// InvalidActionError reports an action that is illegal in the current state.
// It carries no side effects: the combatants are unchanged, and the caller
// decides whether to retry, skip the tick, or penalise.
type InvalidActionError struct {
	Action ActionType
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %q: %s", e.Action, e.Reason)
}

// invalidAction builds an InvalidActionError with a formatted reason.
func invalidAction(a ActionType, format string, args ...interface{}) *InvalidActionError {
	return &InvalidActionError{Action: a, Reason: fmt.Sprintf(format, args...)}
}
