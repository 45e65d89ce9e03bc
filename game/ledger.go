package game

import "sync"

// TokenLedger holds every user's token balance. Each account carries its own
// mutex so updates for different users never contend; the outer lock only
// guards the account map itself. A user can therefore settle a win in one
// room while joining another without a global lock.
type TokenLedger struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

type account struct {
	mu      sync.Mutex
	balance int64
}

func NewTokenLedger() *TokenLedger {
	return &TokenLedger{accounts: make(map[string]*account)}
}

func (l *TokenLedger) account(userID string) *account {
	l.mu.RLock()
	acc, ok := l.accounts[userID]
	l.mu.RUnlock()
	if ok {
		return acc
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if acc, ok := l.accounts[userID]; ok {
		return acc
	}
	acc = &account{}
	l.accounts[userID] = acc
	return acc
}

// Debit removes amount from the user's balance and returns the remaining
// balance. A debit larger than the balance is rejected whole with
// ErrInsufficientBalance. amount must be non-negative.
func (l *TokenLedger) Debit(userID string, amount int64) (int64, error) {
	acc := l.account(userID)
	acc.mu.Lock()
	defer acc.mu.Unlock()

	if acc.balance < amount {
		return acc.balance, ErrInsufficientBalance
	}
	acc.balance -= amount
	return acc.balance, nil
}

// Credit adds amount to the user's balance and returns the new balance.
// amount must be non-negative; credits cannot fail.
func (l *TokenLedger) Credit(userID string, amount int64) int64 {
	acc := l.account(userID)
	acc.mu.Lock()
	defer acc.mu.Unlock()

	acc.balance += amount
	return acc.balance
}

func (l *TokenLedger) Balance(userID string) int64 {
	acc := l.account(userID)
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance
}
