package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoop_Advance_RunsWholeTicks(t *testing.T) {
	l := NewLoop(100, 10)

	ticks := 0
	ran := l.Advance(0.05, func() { ticks++ })

	assert.Equal(t, 5, ran)
	assert.Equal(t, 5, ticks)
}

func TestLoop_Advance_AccumulatesPartialFrames(t *testing.T) {
	l := NewLoop(100, 10)

	ticks := 0
	tick := func() { ticks++ }

	assert.Equal(t, 0, l.Advance(0.004, tick), "under one tick, nothing runs")
	assert.Equal(t, 1, l.Advance(0.007, tick), "leftover carries over into the next frame")
	assert.Equal(t, 1, ticks)
}

func TestLoop_Advance_CatchUpLimitDiscardsLag(t *testing.T) {
	l := NewLoop(100, 5)

	ticks := 0
	ran := l.Advance(1.0, func() { ticks++ })

	assert.Equal(t, 5, ran, "runs at most maxCatchUp ticks")
	assert.Equal(t, 5, ticks)

	// Excess lag was discarded, not deferred to the next frame.
	assert.Equal(t, 0, l.Advance(0, func() { ticks++ }))
	assert.Equal(t, 5, ticks)
}

func TestLoop_Reset(t *testing.T) {
	l := NewLoop(100, 10)

	ticks := 0
	l.Advance(0.009, func() { ticks++ })
	l.Reset()

	assert.Equal(t, 0, l.Advance(0.009, func() { ticks++ }), "accumulated time cleared")
	assert.Equal(t, 0, ticks)
}

func TestNewLoop_PanicsOnBadRate(t *testing.T) {
	assert.Panics(t, func() { NewLoop(0, 5) })
	assert.Panics(t, func() { NewLoop(-100, 5) })
}
