package supply

import (
	"errors"
	"testing"
)

func TestPurse_Spend(t *testing.T) {
	p := NewPurse(5)
	if err := p.Spend(3); err != nil {
		t.Fatalf("Spend(3) error = %v, want nil", err)
	}
	if p.Tokens() != 2 || p.Spent() != 3 {
		t.Errorf("after Spend(3): tokens=%d spent=%d, want 2 and 3", p.Tokens(), p.Spent())
	}
}

func TestPurse_SpendIsAllOrNothing(t *testing.T) {
	p := NewPurse(2)
	err := p.Spend(3)
	if !errors.Is(err, ErrInsufficient) {
		t.Fatalf("Spend(3) error = %v, want ErrInsufficient", err)
	}
	if p.Tokens() != 2 || p.Spent() != 0 {
		t.Errorf("failed Spend changed the purse: tokens=%d spent=%d", p.Tokens(), p.Spent())
	}
}

func TestPurse_RejectsNegative(t *testing.T) {
	p := NewPurse(2)
	if err := p.Spend(-1); err == nil {
		t.Error("Spend(-1) error = nil, want error")
	}
	if p.Tokens() != 2 {
		t.Errorf("tokens = %d, want 2", p.Tokens())
	}
}

func TestPurse_Add(t *testing.T) {
	p := NewPurse(-4)
	if p.Tokens() != 0 {
		t.Errorf("NewPurse(-4).Tokens() = %d, want 0", p.Tokens())
	}
	p.Add(3)
	p.Add(-10)
	if p.Tokens() != 3 {
		t.Errorf("tokens = %d, want 3", p.Tokens())
	}
}
