package battle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/combat"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

// State is the session lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateEnded
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyStarted is returned by Start on a session past NotStarted.
	ErrAlreadyStarted = errors.New("battle: session already started")
	// ErrNotInProgress is returned by Tick and Forfeit outside InProgress.
	// Ended is terminal; a rematch needs a new session.
	ErrNotInProgress = errors.New("battle: session is not in progress")
)

// RecordedEvent is one resolver event annotated with its side and sim time.
// A rejected action is recorded with a nil Event and a non-nil Rejected so
// the input layer can observe the InvalidAction signal without the tick
// failing.
type RecordedEvent struct {
	Side     Side
	At       time.Duration
	Event    *combat.Event
	Rejected *combat.InvalidActionError
}

// StartOptions carries per-battle mode parameters.
type StartOptions struct {
	// ArcadeStage tags the battle with an arcade stage for reward scaling;
	// 0 means a normal match.
	ArcadeStage int
}

// Session owns both combatants for the duration of one battle and is the
// single writer of their state. It is not safe for concurrent use; the
// driving loop must serialise calls.
type Session struct {
	id     uuid.UUID
	logger *zap.Logger
	tuning combat.Tuning
	hooks  effect.HookRunner

	state       State
	combatants  [2]*combat.Combatant
	elapsed     time.Duration
	events      []RecordedEvent
	damageBy    [2]int
	arcadeStage int
	outcome     *Outcome
}

// NewSession creates a session in NotStarted. logger must be non-nil (use
// zap.NewNop in tests); hooks may be nil to disable scripted effect hooks.
func NewSession(logger *zap.Logger, tuning combat.Tuning, hooks effect.HookRunner) *Session {
	return &Session{
		id:     uuid.New(),
		logger: logger,
		tuning: tuning,
		hooks:  hooks,
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id.String() }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Elapsed returns the simulated time advanced so far.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Events returns the full event log in resolution order.
func (s *Session) Events() []RecordedEvent {
	out := make([]RecordedEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Combatant returns the live combatant for the given side, or nil before
// Start. Callers may inspect it but must not mutate it.
func (s *Session) Combatant(side Side) *combat.Combatant {
	return s.combatants[side]
}

// Outcome returns the final outcome once the session has ended.
func (s *Session) Outcome() (*Outcome, bool) {
	if s.state != StateEnded {
		return nil, false
	}
	return s.outcome, true
}

// Start transitions NotStarted -> InProgress with fresh combatant state for
// both archetypes.
//
// Precondition: player and opponent must be non-nil; opts.ArcadeStage >= 0.
// Postcondition: State() == StateInProgress, both combatants at full health.
func (s *Session) Start(player, opponent *catalog.Archetype, opts StartOptions) error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	s.combatants[SidePlayer] = combat.NewCombatant(player, s.hooks)
	s.combatants[SideOpponent] = combat.NewCombatant(opponent, s.hooks)
	s.arcadeStage = opts.ArcadeStage
	s.state = StateInProgress
	s.logger.Info("battle started",
		zap.String("session_id", s.ID()),
		zap.String("player", player.ID),
		zap.String("opponent", opponent.ID),
		zap.Int("arcade_stage", opts.ArcadeStage),
	)
	return nil
}

// Tick advances the simulation by delta: all cooldowns and effect timers are
// decremented, then each side's queued action is resolved in effective-speed
// order (faster side first; the player wins exact ties). The terminal check
// runs after every action resolution, so the battle ends the instant a
// combatant's health crosses zero and the slower action is never resolved.
// The loser is whichever side reached zero during action resolution;
// simultaneous death cannot occur.
//
// An action rejected by the resolver is recorded with its InvalidAction
// signal and the tick continues; the session never mutates on a rejection.
//
// Precondition: delta > 0.
// Postcondition: Returns the events recorded during this tick. After the
// terminal tick, State() == StateEnded and Outcome() is available.
func (s *Session) Tick(delta time.Duration, playerAction, opponentAction combat.ActionType) ([]RecordedEvent, error) {
	if s.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	if delta <= 0 {
		return nil, errors.New("battle: tick delta must be positive")
	}

	s.elapsed += delta
	seconds := delta.Seconds()
	for _, c := range s.combatants {
		c.TickTimers(seconds)
	}

	actions := [2]combat.ActionType{playerAction, opponentAction}
	start := len(s.events)
	for _, side := range s.actingOrder() {
		actor := s.combatants[side]
		target := s.combatants[side.Other()]

		ev, err := combat.Resolve(actor, target, actions[side], s.tuning)
		if err != nil {
			var inv *combat.InvalidActionError
			if errors.As(err, &inv) {
				s.events = append(s.events, RecordedEvent{Side: side, At: s.elapsed, Rejected: inv})
				s.logger.Debug("action rejected",
					zap.String("session_id", s.ID()),
					zap.String("side", side.String()),
					zap.String("reason", inv.Reason),
				)
				continue
			}
			return nil, err
		}

		s.damageBy[side] += ev.Damage
		s.events = append(s.events, RecordedEvent{Side: side, At: s.elapsed, Event: &ev})

		if !target.Alive() {
			s.finish(side, false)
			break
		}
	}
	return s.events[start:], nil
}

// Forfeit ends the battle immediately as an instant loss for the given side,
// bypassing normal terminal-condition evaluation.
//
// Postcondition: State() == StateEnded; the outcome is marked Forfeited.
func (s *Session) Forfeit(side Side) (*Outcome, error) {
	if s.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	s.finish(side.Other(), true)
	return s.outcome, nil
}

// actingOrder returns both sides sorted by effective speed, fastest first.
func (s *Session) actingOrder() [2]Side {
	if s.combatants[SideOpponent].EffectiveSpeed() > s.combatants[SidePlayer].EffectiveSpeed() {
		return [2]Side{SideOpponent, SidePlayer}
	}
	return [2]Side{SidePlayer, SideOpponent}
}

// finish transitions to Ended and builds the single Outcome from the
// accumulated event log.
func (s *Session) finish(winner Side, forfeited bool) {
	s.state = StateEnded
	s.outcome = &Outcome{
		SessionID:      s.ID(),
		Winner:         winner,
		WinnerID:       s.combatants[winner].Archetype.ID,
		Duration:       s.elapsed,
		DamageDealt:    s.damageBy[winner],
		DamageReceived: s.damageBy[winner.Other()],
		WasPerfect:     s.damageBy[winner.Other()] == 0,
		ArcadeStage:    s.arcadeStage,
		Forfeited:      forfeited,
	}
	s.logger.Info("battle ended",
		zap.String("session_id", s.ID()),
		zap.String("winner", s.outcome.WinnerID),
		zap.Duration("duration", s.outcome.Duration),
		zap.Int("damage_dealt", s.outcome.DamageDealt),
		zap.Int("damage_received", s.outcome.DamageReceived),
		zap.Bool("perfect", s.outcome.WasPerfect),
		zap.Bool("forfeited", s.outcome.Forfeited),
	)
}
