// Package config loads the board bring-up plan for the LEDC driver: which
// timers run at what frequency and resolution, and which channel slots bind
// which pins to them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ledc-go/ledc"
	"ledc-go/x/mathx"
)

// Defaults applied by Load.
const (
	DefaultResolutionBits = 13
	DefaultClock          = "apb"
)

// Output-capable ESP32 pads. GPIO34-39 are input-only.
const maxOutputPin = 33

type Timer struct {
	Domain         string `yaml:"domain"` // "hs" or "ls"
	Number         int    `yaml:"number"`
	FrequencyHz    uint32 `yaml:"frequency_hz"`
	ResolutionBits int    `yaml:"resolution_bits"`
	Clock          string `yaml:"clock"` // "apb" or "ref_tick"
}

type Channel struct {
	Domain string  `yaml:"domain"`
	Number int     `yaml:"number"`
	Pin    int     `yaml:"pin"`
	Timer  int     `yaml:"timer"`
	Duty   float64 `yaml:"duty"`
}

type Plan struct {
	Timers   []Timer   `yaml:"timers"`
	Channels []Channel `yaml:"channels"`
}

// Load reads a YAML plan, fills in defaults and validates it. Channels may
// only reference timers the plan itself configures.
func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) normalize() error {
	if len(p.Timers) == 0 {
		return fmt.Errorf("at least one timer is required")
	}

	timerSlots := make(map[[2]int]bool)
	for i := range p.Timers {
		t := &p.Timers[i]
		if t.Clock == "" {
			t.Clock = DefaultClock
		}
		if t.ResolutionBits == 0 {
			t.ResolutionBits = DefaultResolutionBits
		}
		speed, err := ParseDomain(t.Domain)
		if err != nil {
			return fmt.Errorf("timers[%d]: %w", i, err)
		}
		if _, err := ParseClock(t.Clock); err != nil {
			return fmt.Errorf("timers[%d]: %w", i, err)
		}
		if !mathx.Between(t.Number, 0, ledc.NumTimers-1) {
			return fmt.Errorf("timers[%d].number %d out of range 0..%d", i, t.Number, ledc.NumTimers-1)
		}
		if !mathx.Between(t.ResolutionBits, 1, ledc.MaxResolution) {
			return fmt.Errorf("timers[%d].resolution_bits %d out of range 1..%d", i, t.ResolutionBits, ledc.MaxResolution)
		}
		if t.FrequencyHz == 0 {
			return fmt.Errorf("timers[%d].frequency_hz is required", i)
		}
		slot := [2]int{int(speed), t.Number}
		if timerSlots[slot] {
			return fmt.Errorf("timers[%d]: duplicate %s timer %d", i, t.Domain, t.Number)
		}
		timerSlots[slot] = true
	}

	chanSlots := make(map[[2]int]bool)
	for i := range p.Channels {
		c := &p.Channels[i]
		speed, err := ParseDomain(c.Domain)
		if err != nil {
			return fmt.Errorf("channels[%d]: %w", i, err)
		}
		if !mathx.Between(c.Number, 0, ledc.NumChannels-1) {
			return fmt.Errorf("channels[%d].number %d out of range 0..%d", i, c.Number, ledc.NumChannels-1)
		}
		if !mathx.Between(c.Pin, 0, maxOutputPin) {
			return fmt.Errorf("channels[%d].pin %d is not an output-capable pad", i, c.Pin)
		}
		if c.Duty <= 0 || c.Duty > 1 {
			return fmt.Errorf("channels[%d].duty %v outside (0, 1]", i, c.Duty)
		}
		if !timerSlots[[2]int{int(speed), c.Timer}] {
			return fmt.Errorf("channels[%d] references unconfigured %s timer %d", i, c.Domain, c.Timer)
		}
		slot := [2]int{int(speed), c.Number}
		if chanSlots[slot] {
			return fmt.Errorf("channels[%d]: duplicate %s channel %d", i, c.Domain, c.Number)
		}
		chanSlots[slot] = true
	}
	return nil
}

// ParseDomain maps "hs"/"ls" onto the driver's speed banks.
func ParseDomain(s string) (ledc.Speed, error) {
	switch s {
	case "hs":
		return ledc.HighSpeed, nil
	case "ls":
		return ledc.LowSpeed, nil
	}
	return 0, fmt.Errorf("domain %q must be hs or ls", s)
}

// ParseClock maps the plan's clock names onto timer clock sources.
func ParseClock(s string) (ledc.ClockSource, error) {
	switch s {
	case "apb":
		return ledc.ClockAPB, nil
	case "ref_tick":
		return ledc.ClockRefTick, nil
	}
	return 0, fmt.Errorf("clock %q must be apb or ref_tick", s)
}
