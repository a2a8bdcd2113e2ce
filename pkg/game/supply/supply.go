// Package supply holds the move-token purse the terminal host pays for walks with.
package supply

import (
	"errors"
	"fmt"

	"hexcrawl/pkg/logger"
)

// ErrInsufficient is returned when a purse cannot cover a charge
var ErrInsufficient = errors.New("not enough move tokens")

// Purse is a pool of move tokens. It implements renderer.Spender.
type Purse struct {
	tokens int
	spent  int
}

// NewPurse creates a purse holding n tokens
func NewPurse(n int) *Purse {
	if n < 0 {
		n = 0
	}
	return &Purse{tokens: n}
}

// Tokens returns the tokens left
func (p *Purse) Tokens() int {
	return p.tokens
}

// Spent returns the total tokens spent so far
func (p *Purse) Spent() int {
	return p.spent
}

// Spend takes units tokens, or nothing at all if there are not enough
func (p *Purse) Spend(units int) error {
	if units < 0 {
		return fmt.Errorf("spend %d: negative charge", units)
	}
	if units > p.tokens {
		return fmt.Errorf("spend %d of %d: %w", units, p.tokens, ErrInsufficient)
	}
	p.tokens -= units
	p.spent += units
	logger.Log.WithField("spent", units).WithField("left", p.tokens).Debug("move tokens spent")
	return nil
}

// Add puts n tokens back into the purse
func (p *Purse) Add(n int) {
	if n <= 0 {
		return
	}
	p.tokens += n
}
