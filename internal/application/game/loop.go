package game

import (
	"log"
)

// Loop accumulates real elapsed time and converts it into a whole number of
// fixed-duration simulation ticks. When a frame arrives with more lag than
// maxCatchUp ticks' worth, the excess is discarded so the simulation never
// spirals behind a slow renderer.
type Loop struct {
	tickDuration float64
	maxCatchUp   int
	accumulator  float64
}

// NewLoop creates a fixed-timestep loop running at rate ticks per second,
// catching up at most maxCatchUp ticks in a single Advance call.
func NewLoop(rate, maxCatchUp int) *Loop {
	if rate <= 0 {
		panic("game: loop rate must be positive")
	}
	return &Loop{
		tickDuration: 1.0 / float64(rate),
		maxCatchUp:   maxCatchUp,
	}
}

// Advance adds dt seconds of real time and invokes tick once per elapsed
// simulation step, up to the catch-up limit. Returns the number of ticks run.
func (l *Loop) Advance(dt float64, tick func()) int {
	l.accumulator += dt

	ran := 0
	for l.accumulator >= l.tickDuration {
		if ran >= l.maxCatchUp {
			skipped := int(l.accumulator / l.tickDuration)
			l.accumulator -= float64(skipped) * l.tickDuration
			log.Printf("Lagging, skipped %d ticks", skipped)
			break
		}
		l.accumulator -= l.tickDuration
		tick()
		ran++
	}

	return ran
}

// Reset clears any accumulated time, for use after pauses or scene changes.
func (l *Loop) Reset() {
	l.accumulator = 0
}
