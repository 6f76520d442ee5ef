// Package progression implements the XP level curve, milestone level-up
// rewards, and the prestige reset mechanic.
package progression

import (
	"fmt"
	"math"
)

const (
	// DefaultBaseXP and DefaultGrowth are the shipped curve constants:
	// xpRequired(level) = floor(100 * 1.15^(level-1)).
	DefaultBaseXP   = 100
	DefaultGrowth   = 1.15
	DefaultMaxLevel = 50
)

// Curve maps a level to the XP required to reach it from the previous level.
// Changing any of the shipped values is a deliberate rebalance of the whole
// grind, so they live in config rather than content.
type Curve struct {
	BaseXP   int
	Growth   float64
	MaxLevel int
}

// DefaultCurve returns the shipped curve: base 100, growth 1.15, cap 50.
func DefaultCurve() Curve {
	return Curve{BaseXP: DefaultBaseXP, Growth: DefaultGrowth, MaxLevel: DefaultMaxLevel}
}

// Validate checks the curve invariants.
//
// Postcondition: Returns nil iff BaseXP >= 1, Growth > 1, and MaxLevel >= 2.
func (c Curve) Validate() error {
	if c.BaseXP < 1 {
		return fmt.Errorf("curve: base xp must be >= 1, got %d", c.BaseXP)
	}
	if c.Growth <= 1 {
		return fmt.Errorf("curve: growth must be > 1, got %v", c.Growth)
	}
	if c.MaxLevel < 2 {
		return fmt.Errorf("curve: max level must be >= 2, got %d", c.MaxLevel)
	}
	return nil
}

// XPRequired returns the XP needed to advance from level-1 to level:
// floor(BaseXP * Growth^(level-1)). Strictly increasing in level for any
// valid curve.
//
// Precondition: level >= 1.
// Postcondition: Returns >= BaseXP.
func (c Curve) XPRequired(level int) int {
	return int(math.Floor(float64(c.BaseXP) * math.Pow(c.Growth, float64(level-1))))
}
