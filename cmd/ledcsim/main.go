// Command ledcsim runs a channel/timer plan against an in-memory register
// block and prints the resulting register write trace, so bring-up
// sequencing can be checked off-hardware.
package main

import (
	"flag"
	"fmt"
	"os"

	"ledc-go/config"
	"ledc-go/ledc"
)

func main() {
	planPath := flag.String("plan", "plan.yaml", "channel/timer plan to run")
	flag.Parse()

	plan, err := config.Load(*planPath)
	if err != nil {
		fail("plan: %v", err)
	}

	rec := ledc.NewRecorder()
	ctrl := ledc.New(rec)

	timers := make(map[[2]int]*ledc.Timer)
	for _, tp := range plan.Timers {
		speed, _ := config.ParseDomain(tp.Domain)
		clock, _ := config.ParseClock(tp.Clock)
		tm, err := ctrl.Timer(speed, ledc.TimerNum(tp.Number))
		if err != nil {
			fail("timer %s%d: %v", tp.Domain, tp.Number, err)
		}
		if err := tm.Configure(ledc.TimerConfig{
			ResolutionBits: uint8(tp.ResolutionBits),
			FrequencyHz:    tp.FrequencyHz,
			Clock:          clock,
		}); err != nil {
			fail("timer %s%d: %v", tp.Domain, tp.Number, err)
		}
		timers[[2]int{int(speed), tp.Number}] = tm
	}

	for _, cp := range plan.Channels {
		speed, _ := config.ParseDomain(cp.Domain)
		pin := &ledc.RecorderPin{}
		ch, err := ctrl.Channel(speed, ledc.ChannelNum(cp.Number), pin)
		if err != nil {
			fail("channel %s%d: %v", cp.Domain, cp.Number, err)
		}
		if err := ch.Configure(timers[[2]int{int(speed), cp.Timer}], cp.Duty); err != nil {
			fail("channel %s%d: %v", cp.Domain, cp.Number, err)
		}
		fmt.Printf("channel %s%d -> timer %d, pin %d, signal %v\n",
			cp.Domain, cp.Number, cp.Timer, cp.Pin, pin.Signals)
	}

	fmt.Println()
	for _, w := range rec.Writes {
		fmt.Printf("%-14s <= 0x%08X\n", ledc.RegName(w.Off), w.Val)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
