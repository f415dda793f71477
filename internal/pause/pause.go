package pause

import (
	"context"
	"math/rand/v2"
	"time"
)

// Pauser waits a short random number of units between operations.
type Pauser struct {
	unit     time.Duration
	maxUnits int
	rng      *rand.Rand
}

// New returns a Pauser that sleeps 0..maxUnits units of unit each time.
// A nil rng uses a randomly seeded source.
func New(unit time.Duration, maxUnits int, rng *rand.Rand) *Pauser {
	if maxUnits < 0 {
		maxUnits = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pauser{unit: unit, maxUnits: maxUnits, rng: rng}
}

// Next returns the duration of the next pause.
func (p *Pauser) Next() time.Duration {
	return p.unit * time.Duration(p.rng.IntN(p.maxUnits+1))
}

// Pause sleeps for Next(). It returns ctx.Err() if the context is done first.
func (p *Pauser) Pause(ctx context.Context) error {
	return Sleep(ctx, p.Next())
}

// Sleep waits for d or until ctx is done. A zero duration still observes an
// already-cancelled context.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
