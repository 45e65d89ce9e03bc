package game

import (
	"sync"
	"testing"
)

func TestLedger_DebitRejectsOverdraftWhole(t *testing.T) {
	ledger := NewTokenLedger()
	ledger.Credit("u1", 10)

	if _, err := ledger.Debit("u1", 11); err != ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if got := ledger.Balance("u1"); got != 10 {
		t.Fatalf("balance changed on rejected debit: %d", got)
	}

	remaining, err := ledger.Debit("u1", 10)
	if err != nil {
		t.Fatalf("debit failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", remaining)
	}
}

func TestLedger_UnknownUserHasZeroBalance(t *testing.T) {
	ledger := NewTokenLedger()
	if got := ledger.Balance("nobody"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if _, err := ledger.Debit("nobody", 1); err != ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestLedger_ConcurrentCredits(t *testing.T) {
	ledger := NewTokenLedger()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Credit("u1", 1)
		}()
	}
	wg.Wait()

	if got := ledger.Balance("u1"); got != 200 {
		t.Fatalf("expected 200, got %d", got)
	}
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ledger := NewTokenLedger()
	ledger.Credit("u1", 50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Debit("u1", 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 50 {
		t.Fatalf("expected exactly 50 successful debits, got %d", succeeded)
	}
	if got := ledger.Balance("u1"); got != 0 {
		t.Fatalf("expected balance 0, got %d", got)
	}
}
