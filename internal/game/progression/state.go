package progression

import (
	"errors"
	"fmt"
)

// DefaultMaxPrestige is the shipped prestige cap.
const DefaultMaxPrestige = 10

var (
	// ErrPrestigeLocked is returned by Prestige below max level.
	ErrPrestigeLocked = errors.New("progression: prestige requires max level")
	// ErrPrestigeCapped is returned by Prestige at the prestige cap.
	ErrPrestigeCapped = errors.New("progression: prestige level is at its cap")
)

// State is a player's persistent progression, mutated only by AddXP and
// Prestige. It is not safe for concurrent use; the owning layer serialises
// access.
//
// Invariant: outside AddXP's level-up loop, xp < curve.XPRequired(level+1)
// whenever level < curve.MaxLevel, and xp == 0 at max level.
type State struct {
	curve       Curve
	table       RewardTable
	maxPrestige int

	level    int
	xp       int
	prestige int
	totalXP  int
}

// NewState creates a fresh level-1 progression on the given curve and table.
//
// Precondition: curve must validate.
func NewState(curve Curve, table RewardTable) (*State, error) {
	return NewStateWithCap(curve, table, DefaultMaxPrestige)
}

// NewStateWithCap creates a fresh level-1 progression with a custom prestige cap.
//
// Precondition: curve must validate and maxPrestige must be >= 0.
func NewStateWithCap(curve Curve, table RewardTable, maxPrestige int) (*State, error) {
	if err := curve.Validate(); err != nil {
		return nil, err
	}
	if maxPrestige < 0 {
		return nil, fmt.Errorf("progression: max prestige must be >= 0, got %d", maxPrestige)
	}
	return &State{
		curve:       curve,
		table:       table,
		maxPrestige: maxPrestige,
		level:       1,
	}, nil
}

// Level returns the current level in [1, MaxLevel].
func (s *State) Level() int { return s.level }

// XP returns progress toward the next level.
func (s *State) XP() int { return s.xp }

// PrestigeLevel returns the current prestige in [0, DefaultMaxPrestige].
func (s *State) PrestigeLevel() int { return s.prestige }

// TotalXPEarned returns lifetime XP across all prestiges.
func (s *State) TotalXPEarned() int { return s.totalXP }

// AtMaxLevel reports whether the level cap is reached.
func (s *State) AtMaxLevel() bool { return s.level >= s.curve.MaxLevel }

// XPMultiplier returns the prestige XP multiplier: 1 + 0.1 * prestige.
func (s *State) XPMultiplier() float64 { return 1 + 0.1*float64(s.prestige) }

// CoinMultiplier returns the prestige coin multiplier: 1 + 0.05 * prestige.
func (s *State) CoinMultiplier() float64 { return 1 + 0.05*float64(s.prestige) }

// AddXP credits amount XP (already scaled by the reward pipeline) and applies
// as many level-ups as the total affords, returning the level-up rewards in
// order. Splitting an amount across several calls yields the same final
// state and reward set as one combined call. At max level any surplus XP is
// discarded, not banked for the next prestige.
//
// Precondition: amount >= 0.
// Postcondition: The State invariant holds; len(rewards) == levels gained.
func (s *State) AddXP(amount int) ([]LevelUpReward, error) {
	if amount < 0 {
		return nil, fmt.Errorf("progression: xp amount must be >= 0, got %d", amount)
	}
	s.totalXP += amount
	s.xp += amount

	var rewards []LevelUpReward
	for s.level < s.curve.MaxLevel && s.xp >= s.curve.XPRequired(s.level+1) {
		s.xp -= s.curve.XPRequired(s.level + 1)
		s.level++
		rewards = append(rewards, s.table.RewardFor(s.level))
	}
	if s.level >= s.curve.MaxLevel {
		// Surplus is zeroed at the cap, not capped-and-held.
		s.xp = 0
	}
	return rewards, nil
}

// Prestige resets level and XP in exchange for a permanent multiplier bump.
// Permitted only at max level while below the prestige cap.
//
// Postcondition: On success, Level() == 1, XP() == 0, PrestigeLevel()
// incremented, and the returned reward carries the new multipliers.
func (s *State) Prestige() (*PrestigeReward, error) {
	if !s.AtMaxLevel() {
		return nil, ErrPrestigeLocked
	}
	if s.prestige >= s.maxPrestige {
		return nil, ErrPrestigeCapped
	}
	s.prestige++
	s.level = 1
	s.xp = 0
	return &PrestigeReward{
		PrestigeLevel:  s.prestige,
		XPMultiplier:   s.XPMultiplier(),
		CoinMultiplier: s.CoinMultiplier(),
	}, nil
}
