package game

import (
	"math/rand"
	"time"
)

// Rand is the randomness used for card generation and number draws.
// *math/rand.Rand satisfies it; tests inject seeded sources to get
// reproducible cards and draw sequences.
type Rand interface {
	Intn(n int) int
}

func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

func newTimeRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
