package leetcode

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestPacerPause(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pacer := NewPacer(clock, time.Second)

	done := make(chan error)
	go func() {
		done <- pacer.Pause(context.Background())
	}()

	// Any pause is shorter than the maximum, so advancing by the maximum
	// always releases it.
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	assert.NoError(t, <-done)
}

func TestPacerCancelled(t *testing.T) {
	pacer := NewPacer(clockwork.NewFakeClock(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, pacer.Pause(ctx))
}

func TestPacerDisabled(t *testing.T) {
	pacer := NewPacer(clockwork.NewFakeClock(), 0)
	assert.NoError(t, pacer.Pause(context.Background()))
}
