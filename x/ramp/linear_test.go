package ramp

import (
	"testing"
	"time"
)

func run(cur, to, top uint32, durationMs uint32, steps uint16, tick Tick) []uint32 {
	var levels []uint32
	Linear(cur, to, top, durationMs, steps, tick, func(level uint32) {
		levels = append(levels, level)
	})
	return levels
}

func always(time.Duration) bool { return true }

func TestLinearLandsExactlyOnTarget(t *testing.T) {
	levels := run(0, 1000, 8192, 100, 10, always)
	if len(levels) == 0 || levels[len(levels)-1] != 1000 {
		t.Fatalf("levels = %v, want final 1000", levels)
	}
	prev := uint32(0)
	for _, l := range levels {
		if l < prev {
			t.Fatalf("levels not monotonic: %v", levels)
		}
		prev = l
	}
}

func TestLinearSnapsWithoutSteps(t *testing.T) {
	levels := run(0, 9000, 8192, 0, 0, always)
	if len(levels) != 1 || levels[0] != 8192 {
		t.Fatalf("levels = %v, want single clamped snap to 8192", levels)
	}
}

func TestLinearStopsWhenCancelled(t *testing.T) {
	calls := 0
	tick := func(time.Duration) bool {
		calls++
		return calls <= 2
	}
	levels := run(0, 1000, 8192, 100, 10, tick)
	for _, l := range levels {
		if l == 1000 {
			t.Fatalf("cancelled ramp reached target: %v", levels)
		}
	}
	if len(levels) > 2 {
		t.Fatalf("levels = %v, want at most 2 before cancellation", levels)
	}
}

func TestLinearRampsDown(t *testing.T) {
	levels := run(4096, 1, 8192, 100, 8, always)
	if levels[len(levels)-1] != 1 {
		t.Fatalf("levels = %v, want final 1", levels)
	}
	prev := uint32(4096)
	for _, l := range levels {
		if l > prev {
			t.Fatalf("levels not descending: %v", levels)
		}
		prev = l
	}
}
