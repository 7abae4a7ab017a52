//go:build esp32

// Package machinepwm exposes one LEDC speed bank through the machine-style
// PWM peripheral shape consumed by tinygo.org/x/drivers packages such as
// servo and tone.
package machinepwm

import (
	"machine"

	"ledc-go/ledc"
)

// Group pairs one timer with the channel slots of its speed bank. Channel
// allocation is first-free; every pin handed to Channel runs off the same
// timer, so all of them share period and resolution.
type Group struct {
	ctrl  *ledc.Controller
	speed ledc.Speed
	timer *ledc.Timer
	chans [ledc.NumChannels]*ledc.Channel
	bits  uint8
}

func New(ctrl *ledc.Controller, speed ledc.Speed, timer *ledc.Timer) *Group {
	return &Group{ctrl: ctrl, speed: speed, timer: timer}
}

// Configure programs the group's timer for the requested period, picking
// the widest duty resolution the APB clock can still reach. A zero period
// falls back to 1 ms.
func (g *Group) Configure(config machine.PWMConfig) error {
	period := config.Period
	if period == 0 {
		period = 1_000_000
	}
	return g.SetPeriod(period)
}

// SetPeriod retargets the timer; period is in nanoseconds. Duty values
// already programmed on the group's channels are not rescaled, so callers
// set them again afterwards.
func (g *Group) SetPeriod(period uint64) error {
	if period == 0 {
		return ledc.ErrDivider
	}
	freq := uint32(1_000_000_000 / period)
	for bits := uint8(ledc.MaxResolution); bits > 0; bits-- {
		err := g.timer.Configure(ledc.TimerConfig{
			ResolutionBits: bits,
			FrequencyHz:    freq,
			Clock:          ledc.ClockAPB,
		})
		if err == nil {
			g.bits = bits
			return nil
		}
	}
	return ledc.ErrDivider
}

// Top returns the full-on duty value.
func (g *Group) Top() uint32 {
	return uint32(1) << g.bits
}

// Channel claims the next free channel slot, routes it to pin, and binds it
// to the group's timer at the smallest nonzero duty.
func (g *Group) Channel(pin machine.Pin) (uint8, error) {
	for n := ledc.ChannelNum(0); n < ledc.NumChannels; n++ {
		if g.chans[n] != nil {
			continue
		}
		ch, err := g.ctrl.Channel(g.speed, n, ledc.MatrixPin{Pin: pin})
		if err != nil {
			return 0, err
		}
		if err := ch.Configure(g.timer, 1/float64(g.Top())); err != nil {
			ch.Release()
			return 0, err
		}
		g.chans[n] = ch
		return uint8(n), nil
	}
	return 0, ledc.ErrChannelInUse
}

// Set programs a claimed channel's duty as value out of Top. Requests the
// duty engine refuses (zero, or above Top) leave the output unchanged.
func (g *Group) Set(channel uint8, value uint32) {
	if channel >= ledc.NumChannels {
		return
	}
	ch := g.chans[channel]
	if ch == nil {
		return
	}
	_ = ch.SetDuty(float64(value) / float64(g.Top()))
}
