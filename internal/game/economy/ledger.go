// Package economy provides the coin/feather ledger with atomic
// check-then-commit spend semantics.
package economy

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInsufficientFunds is returned by spend operations when the balance
// cannot cover the amount. A failed spend is a normal gameplay outcome and
// leaves the ledger untouched.
var ErrInsufficientFunds = errors.New("economy: insufficient funds")

// Balance is a point-in-time snapshot of a ledger.
type Balance struct {
	Coins    int
	Feathers int
}

// Ledger tracks a player's coins and feathers. All operations take the
// ledger lock, so the affordability check and the commit are a single
// atomic step; concurrent spends can never both pass the check.
//
// Invariant: coins >= 0 and feathers >= 0 at all times.
type Ledger struct {
	mu       sync.Mutex
	coins    int
	feathers int
}

// NewLedger creates a ledger with the given starting balances.
//
// Precondition: coins >= 0 and feathers >= 0.
func NewLedger(coins, feathers int) (*Ledger, error) {
	if coins < 0 {
		return nil, fmt.Errorf("economy: starting coins must be >= 0, got %d", coins)
	}
	if feathers < 0 {
		return nil, fmt.Errorf("economy: starting feathers must be >= 0, got %d", feathers)
	}
	return &Ledger{coins: coins, feathers: feathers}, nil
}

// Balance returns a snapshot of the current balances.
func (l *Ledger) Balance() Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Balance{Coins: l.coins, Feathers: l.feathers}
}

// Deposit atomically credits coins and feathers in one step.
//
// Precondition: coins >= 0 and feathers >= 0.
// Postcondition: Both balances increase by exactly the requested amounts, or
// neither changes.
func (l *Ledger) Deposit(coins, feathers int) error {
	if coins < 0 || feathers < 0 {
		return fmt.Errorf("economy: deposit amounts must be >= 0, got coins=%d feathers=%d", coins, feathers)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.coins += coins
	l.feathers += feathers
	return nil
}

// AddCoins credits amount coins.
//
// Precondition: amount >= 0.
func (l *Ledger) AddCoins(amount int) error {
	return l.Deposit(amount, 0)
}

// AddFeathers credits amount feathers.
//
// Precondition: amount >= 0.
func (l *Ledger) AddFeathers(amount int) error {
	return l.Deposit(0, amount)
}

// SpendCoins debits amount coins. When the balance is short it fails with
// ErrInsufficientFunds and mutates nothing.
//
// Precondition: amount >= 0.
// Postcondition: On success, coins_after == coins_before - amount exactly.
func (l *Ledger) SpendCoins(amount int) error {
	if amount < 0 {
		return fmt.Errorf("economy: spend amount must be >= 0, got %d", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > l.coins {
		return ErrInsufficientFunds
	}
	l.coins -= amount
	return nil
}

// SpendFeathers debits amount feathers with the same semantics as SpendCoins.
func (l *Ledger) SpendFeathers(amount int) error {
	if amount < 0 {
		return fmt.Errorf("economy: spend amount must be >= 0, got %d", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > l.feathers {
		return ErrInsufficientFunds
	}
	l.feathers -= amount
	return nil
}

// CanAffordCoins reports whether a coin spend of amount would succeed right
// now. Advisory only: the answer can go stale under concurrency, and
// SpendCoins re-checks under the lock.
func (l *Ledger) CanAffordCoins(amount int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return amount >= 0 && amount <= l.coins
}

// CanAffordFeathers reports whether a feather spend of amount would succeed
// right now, with the same advisory caveat as CanAffordCoins.
func (l *Ledger) CanAffordFeathers(amount int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return amount >= 0 && amount <= l.feathers
}
