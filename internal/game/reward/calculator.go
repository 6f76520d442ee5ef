// Package reward computes the coin/feather/XP payout for a finished battle.
// The calculator is a pure function of the outcome and the player's
// progression context; crediting a ledger is the caller's job.
package reward

import (
	"math"
	"time"

	"github.com/kestrel-games/birdclash/internal/game/battle"
)

// Base payouts and bonuses. Every bonus is additive; the prestige and
// passive multipliers apply once at the end, so the additive order is what
// fixes the exact reward numbers.
const (
	winCoins  = 100
	lossCoins = 25
	winXP     = 50
	lossXP    = 20

	perfectCoins = 50
	perfectXP    = 25

	arcadeCoinsPerStage = 25
	arcadeXPPerStage    = 5

	firstWinCoins    = 200
	firstWinFeathers = 1

	longBattleXP   = 10 // duration > 30s
	longerBattleXP = 15 // duration > 60s, additive with the 30s bonus

	longBattle   = 30 * time.Second
	longerBattle = 60 * time.Second
)

// Input is the player-side context for one reward computation.
type Input struct {
	// IsFirstWinOfDay is supplied by the daily-bonus layer outside the core.
	IsFirstWinOfDay bool
	// PrestigeLevel drives the final multiplicative scaling:
	// xp * (1 + 0.1p), coins * (1 + 0.05p).
	PrestigeLevel int
	// XPPassive and CoinPassive are the winner archetype's passive stream
	// multipliers, applied at the same multiplicative stage as prestige.
	// Values <= 0 are treated as 1.
	XPPassive   float64
	CoinPassive float64
}

// BattleReward is the computed payout for one battle.
type BattleReward struct {
	Coins    int
	Feathers int
	XP       int
}

// Compute derives the payout for the player side from a battle outcome.
// All additive bonuses land before the multiplicative stage; floors are
// applied once per resource at the end.
//
// Precondition: outcome must come from an ended session.
// Postcondition: All fields >= 0; deterministic for identical inputs.
func Compute(outcome battle.Outcome, in Input) BattleReward {
	won := outcome.Winner == battle.SidePlayer

	coins := lossCoins
	xp := lossXP
	feathers := 0

	if won {
		coins = winCoins
		xp = winXP
		if outcome.WasPerfect {
			coins += perfectCoins
			xp += perfectXP
		}
		if outcome.ArcadeStage > 0 {
			coins += arcadeCoinsPerStage * outcome.ArcadeStage
			xp += arcadeXPPerStage * outcome.ArcadeStage
		}
		if in.IsFirstWinOfDay {
			coins += firstWinCoins
			feathers += firstWinFeathers
		}
	}

	if outcome.Duration > longBattle {
		xp += longBattleXP
	}
	if outcome.Duration > longerBattle {
		xp += longerBattleXP
	}

	xpMult := (1 + 0.1*float64(in.PrestigeLevel)) * positive(in.XPPassive)
	coinMult := (1 + 0.05*float64(in.PrestigeLevel)) * positive(in.CoinPassive)

	return BattleReward{
		Coins:    int(math.Floor(float64(coins) * coinMult)),
		Feathers: feathers,
		XP:       int(math.Floor(float64(xp) * xpMult)),
	}
}

func positive(m float64) float64 {
	if m <= 0 {
		return 1
	}
	return m
}
