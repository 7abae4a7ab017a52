//go:build esp32

// Command breathe fades an LED on GPIO2 up and down through a low-speed
// LEDC channel. Board bring-up smoke test.
package main

import (
	"machine"
	"time"

	"ledc-go/ledc"
	"ledc-go/x/ramp"
)

const (
	ledPin     = machine.Pin(2)
	resolution = 13
	top        = uint32(1) << resolution
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	regs, err := ledc.Map()
	if err != nil {
		println("ledc:", err.Error())
		return
	}
	ctrl := ledc.New(regs)

	tm, err := ctrl.Timer(ledc.LowSpeed, 0)
	if err != nil {
		println("timer:", err.Error())
		return
	}
	if err := tm.Configure(ledc.TimerConfig{
		ResolutionBits: resolution,
		FrequencyHz:    5000,
		Clock:          ledc.ClockAPB,
	}); err != nil {
		println("timer:", err.Error())
		return
	}

	ch, err := ctrl.Channel(ledc.LowSpeed, 0, ledc.MatrixPin{Pin: ledPin})
	if err != nil {
		println("channel:", err.Error())
		return
	}
	if err := ch.Configure(tm, 0.5); err != nil {
		println("channel:", err.Error())
		return
	}
	println("breathing on pin", int(ledPin))

	cur := top / 2
	for {
		for _, to := range []uint32{top, 1, top / 2} {
			ramp.Linear(cur, to, top, 1500, 64, wait, func(level uint32) {
				_ = ch.SetDuty(float64(level) / float64(top))
			})
			cur = to
		}
	}
}

func wait(d time.Duration) bool {
	time.Sleep(d)
	return true
}
