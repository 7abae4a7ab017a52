//go:build esp32

// Command servosweep swings a hobby servo on GPIO18 between its endpoints,
// driving it through the machinepwm adapter on a high-speed LEDC timer.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/servo"

	"ledc-go/ledc"
	"ledc-go/ledc/machinepwm"
)

func main() {
	time.Sleep(2 * time.Second)
	println("boot")

	regs, err := ledc.Map()
	if err != nil {
		println("ledc:", err.Error())
		return
	}
	ctrl := ledc.New(regs)

	tm, err := ctrl.Timer(ledc.HighSpeed, 0)
	if err != nil {
		println("timer:", err.Error())
		return
	}

	s, err := servo.New(machinepwm.New(ctrl, ledc.HighSpeed, tm), machine.Pin(18))
	if err != nil {
		println("servo:", err.Error())
		return
	}

	for {
		for _, us := range []int16{1000, 1500, 2000, 1500} {
			s.SetMicroseconds(us)
			time.Sleep(800 * time.Millisecond)
		}
	}
}
