package leetcode

import (
	"context"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultMaxPause is the upper bound on the pause after each request.
const DefaultMaxPause = time.Second

// Pacer spaces out requests with a random sub-second pause so that LeetCode
// doesn't rate limit us. It isn't safe for concurrent use.
type Pacer struct {
	clock clockwork.Clock
	max   time.Duration
	rand  *rand.Rand
}

// NewPacer creates a Pacer that pauses for a random duration in [0, max).
func NewPacer(clock clockwork.Clock, max time.Duration) *Pacer {
	return &Pacer{
		clock: clock,
		max:   max,
		rand:  rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// Pause blocks for a random duration, or until the context is cancelled.
func (p *Pacer) Pause(ctx context.Context) error {
	if p.max <= 0 {
		return ctx.Err()
	}

	select {
	case <-p.clock.After(time.Duration(p.rand.Int63n(int64(p.max)))):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
