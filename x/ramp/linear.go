// Package ramp provides caller-driven duty ramps. The LEDC hardware's own
// fade machinery is interrupt-based and unused by this module; these ramps
// are plain loops whose timing the caller supplies.
package ramp

import (
	"time"

	"ledc-go/x/mathx"
)

// Step applies a new absolute level in [0..top].
type Step func(level uint32)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear walks from cur to 'to' in evenly spaced absolute steps spread over
// durationMs, clamping to [0, top]. steps==0 or durationMs==0 snaps straight
// to the target. The final step always lands exactly on 'to'.
func Linear(cur, to, top uint32, durationMs uint32, steps uint16, tick Tick, set Step) {
	to = mathx.Min(to, top)
	if steps == 0 || durationMs == 0 {
		set(to)
		return
	}

	delta := int64(to) - int64(cur)
	st := int64(steps)
	acc := int64(0)
	level := int64(cur)

	stepDurMs := durationMs / uint32(steps)
	if stepDurMs == 0 {
		stepDurMs = 1
	}
	stepDur := time.Duration(stepDurMs) * time.Millisecond

	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return
		}
		acc += delta
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			level = mathx.Clamp(level+inc, 0, int64(top))
			set(uint32(level))
		}
	}
	if tick(stepDur) {
		set(to)
	}
}
