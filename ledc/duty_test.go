package ledc

import (
	"errors"
	"testing"
)

func TestComputeDutyTruncates(t *testing.T) {
	cases := []struct {
		bits uint8
		frac float64
		want uint32
	}{
		{8, 0.5, 128},
		{8, 0.999, 255},
		{8, 1.0, 256}, // full range: hardware drives the output constantly high
		{13, 0.5, 4096},
		{1, 0.6, 1},
		{4, 0.0625, 1},
		{20, 1.0, 1 << 20},
	}
	for _, c := range cases {
		got, err := computeDuty(c.bits, c.frac)
		if err != nil {
			t.Fatalf("computeDuty(%d, %v) error: %v", c.bits, c.frac, err)
		}
		if got != c.want {
			t.Fatalf("computeDuty(%d, %v) = %d, want %d", c.bits, c.frac, got, c.want)
		}
	}
}

func TestComputeDutyRejects(t *testing.T) {
	cases := []struct {
		bits uint8
		frac float64
	}{
		{8, 1.01},  // above full range
		{4, 0.01},  // quantizes to zero at this resolution
		{8, 0},     // zero request carries no duty
		{8, -0.25}, // negative
		{20, 1e-7},
	}
	for _, c := range cases {
		if _, err := computeDuty(c.bits, c.frac); !errors.Is(err, ErrDuty) {
			t.Fatalf("computeDuty(%d, %v) error = %v, want ErrDuty", c.bits, c.frac, err)
		}
	}
}
