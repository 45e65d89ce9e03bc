package game

// drawPool is the per-room set of numbers not yet drawn. The owning room's
// lock serializes access, so one logical draw tick happens at a time and a
// number can never come out twice.
type drawPool struct {
	remaining []int
}

func newDrawPool() *drawPool {
	remaining := make([]int, BallCount)
	for i := range remaining {
		remaining[i] = i + 1
	}
	return &drawPool{remaining: remaining}
}

// next picks uniformly among the remaining numbers and removes it.
func (p *drawPool) next(rng Rand) (int, error) {
	if len(p.remaining) == 0 {
		return 0, ErrGameExhausted
	}
	j := rng.Intn(len(p.remaining))
	n := p.remaining[j]
	p.remaining[j] = p.remaining[len(p.remaining)-1]
	p.remaining = p.remaining[:len(p.remaining)-1]
	return n, nil
}

func (p *drawPool) exhausted() bool {
	return len(p.remaining) == 0
}
