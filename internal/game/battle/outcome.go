// Package battle drives one match from start to terminal state, sequencing
// both sides' actions through the combat resolver each tick and emitting a
// single Outcome when the session ends.
package battle

import "time"

// Side identifies one of the two combatant slots in a session.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns "player" or "opponent".
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "opponent"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// Outcome is the immutable record of a finished battle. It is produced
// exactly once per session and is the sole input the reward pipeline needs.
type Outcome struct {
	// SessionID identifies the session that produced this outcome.
	SessionID string
	// Winner is the winning side; WinnerID is that side's archetype id.
	Winner   Side
	WinnerID string
	// Duration is the simulated time elapsed from start to terminal state.
	Duration time.Duration
	// DamageDealt and DamageReceived are the winner's tick-by-tick
	// accumulations over the whole battle.
	DamageDealt    int
	DamageReceived int
	// WasPerfect is true iff the winner took zero damage.
	WasPerfect bool
	// ArcadeStage is the arcade stage this battle was fought at; 0 = none.
	ArcadeStage int
	// Forfeited is true when the battle ended by forfeit instead of knockout.
	Forfeited bool
}
