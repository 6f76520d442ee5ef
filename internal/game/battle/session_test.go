package battle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kestrel-games/birdclash/internal/game/battle"
	"github.com/kestrel-games/birdclash/internal/game/catalog"
	"github.com/kestrel-games/birdclash/internal/game/combat"
	"github.com/kestrel-games/birdclash/internal/game/effect"
)

func newSession(t *testing.T) *battle.Session {
	t.Helper()
	return battle.NewSession(zap.NewNop(), combat.DefaultTuning(), nil)
}

func archetypePair(t *testing.T, player, opponent string) (*catalog.Archetype, *catalog.Archetype) {
	t.Helper()
	c := catalog.Default()
	p, err := c.Archetype(player)
	require.NoError(t, err)
	o, err := c.Archetype(opponent)
	require.NoError(t, err)
	return p, o
}

// brawler returns a custom archetype that one-shots sparrow-class health,
// for deterministic terminal-state tests.
func brawler(speed int) *catalog.Archetype {
	return &catalog.Archetype{
		ID:    "brawler",
		Name:  "Brawler",
		Stats: catalog.Stats{Health: 100, Attack: 500, Defense: 0, Speed: speed},
		Ability: catalog.Ability{
			Name: "Haymaker", Kind: effect.KindDamage, Power: 500, CooldownSeconds: 5,
		},
	}
}

func victim(speed int) *catalog.Archetype {
	return &catalog.Archetype{
		ID:    "victim",
		Name:  "Victim",
		Stats: catalog.Stats{Health: 50, Attack: 5, Defense: 0, Speed: speed},
		Ability: catalog.Ability{
			Name: "Flail", Kind: effect.KindDamage, Power: 5, CooldownSeconds: 5,
		},
	}
}

func TestSession_Lifecycle(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, battle.StateNotStarted, s.State())

	_, err := s.Tick(time.Second, combat.ActionPass, combat.ActionPass)
	assert.ErrorIs(t, err, battle.ErrNotInProgress)
	_, err = s.Forfeit(battle.SidePlayer)
	assert.ErrorIs(t, err, battle.ErrNotInProgress)

	p, o := archetypePair(t, "pigeon", "eagle")
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))
	assert.Equal(t, battle.StateInProgress, s.State())
	assert.Error(t, s.Start(p, o, battle.StartOptions{})) // already started

	_, ok := s.Outcome()
	assert.False(t, ok)
}

func TestSession_Tick_RejectsNonPositiveDelta(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "pigeon", "eagle")
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))
	_, err := s.Tick(0, combat.ActionPass, combat.ActionPass)
	assert.Error(t, err)
}

func TestSession_Tick_AdvancesTimersAndElapsed(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "pigeon", "eagle")
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))

	_, err := s.Tick(time.Second, combat.ActionAbility, combat.ActionPass)
	require.NoError(t, err)
	assert.Equal(t, time.Second, s.Elapsed())
	// Pigeon's 5s cooldown armed this tick, then three more seconds pass.
	_, err = s.Tick(3*time.Second, combat.ActionPass, combat.ActionPass)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.Combatant(battle.SidePlayer).CooldownRemaining, 1e-9)
}

func TestSession_Tick_FasterSideActsFirst(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "eagle", "hummingbird") // opponent is faster
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))

	events, err := s.Tick(time.Second, combat.ActionAttack, combat.ActionAttack)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, battle.SideOpponent, events[0].Side)
	assert.Equal(t, battle.SidePlayer, events[1].Side)
}

func TestSession_Tick_TerminalWithinCrossingTick(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Start(brawler(10), victim(5), battle.StartOptions{}))

	events, err := s.Tick(time.Second, combat.ActionAttack, combat.ActionAttack)
	require.NoError(t, err)
	// The kill ends the battle mid-tick: the victim's queued attack is never
	// resolved and no event is recorded for it.
	require.Len(t, events, 1)
	assert.Equal(t, battle.SidePlayer, events[0].Side)
	assert.Equal(t, battle.StateEnded, s.State())

	outcome, ok := s.Outcome()
	require.True(t, ok)
	assert.Equal(t, battle.SidePlayer, outcome.Winner)
	assert.Equal(t, "brawler", outcome.WinnerID)
	assert.Equal(t, 50, outcome.DamageDealt) // capped by the victim's health
	assert.Equal(t, 0, outcome.DamageReceived)
	assert.True(t, outcome.WasPerfect)
	assert.False(t, outcome.Forfeited)
	assert.Equal(t, time.Second, outcome.Duration)

	// Ended is terminal.
	_, err = s.Tick(time.Second, combat.ActionPass, combat.ActionPass)
	assert.ErrorIs(t, err, battle.ErrNotInProgress)
}

func TestSession_Tick_FasterVictimDiesToSlowerKiller(t *testing.T) {
	s := newSession(t)
	// The victim is faster: it acts first, chips the brawler, then dies to
	// the slower action in the same tick. Not a perfect win.
	require.NoError(t, s.Start(brawler(5), victim(20), battle.StartOptions{}))

	_, err := s.Tick(time.Second, combat.ActionAttack, combat.ActionAttack)
	require.NoError(t, err)
	assert.Equal(t, battle.StateEnded, s.State())

	outcome, ok := s.Outcome()
	require.True(t, ok)
	assert.Equal(t, battle.SidePlayer, outcome.Winner)
	assert.Equal(t, 5, outcome.DamageReceived)
	assert.False(t, outcome.WasPerfect)
}

func TestSession_Tick_RejectedActionRecordedWithoutMutation(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "pigeon", "eagle")
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))

	_, err := s.Tick(time.Second, combat.ActionAbility, combat.ActionPass)
	require.NoError(t, err)
	// Ability again while on cooldown: rejected, battle continues.
	events, err := s.Tick(time.Second, combat.ActionAbility, combat.ActionPass)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.NotNil(t, events[0].Rejected)
	assert.Equal(t, combat.ActionAbility, events[0].Rejected.Action)
	assert.Nil(t, events[0].Event)
	assert.Equal(t, battle.StateInProgress, s.State())
}

func TestSession_Forfeit(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "pigeon", "eagle")
	require.NoError(t, s.Start(p, o, battle.StartOptions{ArcadeStage: 2}))

	_, err := s.Tick(time.Second, combat.ActionAttack, combat.ActionAttack)
	require.NoError(t, err)

	outcome, err := s.Forfeit(battle.SidePlayer)
	require.NoError(t, err)
	assert.Equal(t, battle.SideOpponent, outcome.Winner)
	assert.Equal(t, "eagle", outcome.WinnerID)
	assert.True(t, outcome.Forfeited)
	assert.Equal(t, 2, outcome.ArcadeStage)
	assert.Equal(t, battle.StateEnded, s.State())

	_, err = s.Forfeit(battle.SidePlayer)
	assert.ErrorIs(t, err, battle.ErrNotInProgress)
}

func TestSession_FullBattle_DamageAccountingConsistent(t *testing.T) {
	s := newSession(t)
	p, o := archetypePair(t, "hummingbird", "pelican")
	require.NoError(t, s.Start(p, o, battle.StartOptions{}))

	for s.State() == battle.StateInProgress {
		playerAction := combat.ActionAttack
		if s.Combatant(battle.SidePlayer).AbilityReady() {
			playerAction = combat.ActionAbility
		}
		opponentAction := combat.ActionAttack
		if s.Combatant(battle.SideOpponent).AbilityReady() {
			opponentAction = combat.ActionAbility
		}
		_, err := s.Tick(time.Second, playerAction, opponentAction)
		require.NoError(t, err)
		require.Less(t, s.Elapsed(), 10*time.Minute, "battle must terminate")
	}

	outcome, ok := s.Outcome()
	require.True(t, ok)

	var dealtByWinner, dealtByLoser int
	for _, re := range s.Events() {
		if re.Event == nil {
			continue
		}
		if re.Side == outcome.Winner {
			dealtByWinner += re.Event.Damage
		} else {
			dealtByLoser += re.Event.Damage
		}
	}
	assert.Equal(t, outcome.DamageDealt, dealtByWinner)
	assert.Equal(t, outcome.DamageReceived, dealtByLoser)
	assert.Equal(t, outcome.WasPerfect, dealtByLoser == 0)
	loser := s.Combatant(outcome.Winner.Other())
	assert.False(t, loser.Alive())
}

func TestSession_UniqueIDs(t *testing.T) {
	a := newSession(t)
	b := newSession(t)
	assert.NotEqual(t, a.ID(), b.ID())
}
