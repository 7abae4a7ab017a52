package ledc

import "ledc-go/x/mathx"

// TimerSource is what a channel consumes from its timer: whether it has been
// configured, its duty resolution, and its identity within the speed bank.
// *Timer implements it; tests substitute their own.
type TimerSource interface {
	Configured() bool
	Resolution() (bits uint8, ok bool)
	Number() TimerNum
}

// ClockSource selects the reference clock a timer divides down.
type ClockSource uint8

const (
	ClockAPB     ClockSource = iota // 80 MHz
	ClockRefTick                    // 1 MHz
)

const (
	apbClockHz     = 80_000_000
	refTickClockHz = 1_000_000
)

// MaxResolution is the widest duty counter the peripheral supports.
const MaxResolution = 20

// Divider bounds, 10.8 fixed point. Below 1.0 the counter cannot keep up
// with the source clock; the field itself is 18 bits wide.
const (
	minDivider = 1 << 8
	maxDivider = timerDivMask
)

// TimerConfig sets a timer's duty resolution and output frequency. The PWM
// period is (1<<ResolutionBits)/FrequencyHz worth of source clock ticks.
type TimerConfig struct {
	ResolutionBits uint8
	FrequencyHz    uint32
	Clock          ClockSource
}

// Timer is one claimed LEDC timer slot.
type Timer struct {
	regs       RegisterIO
	ctrl       *Controller
	speed      Speed
	num        TimerNum
	bits       uint8
	configured bool
}

func (t *Timer) Configured() bool { return t.configured }

func (t *Timer) Number() TimerNum { return t.num }

// Resolution returns the configured duty resolution in bits, or ok=false
// while the timer has never been configured.
func (t *Timer) Resolution() (uint8, bool) {
	if !t.configured {
		return 0, false
	}
	return t.bits, true
}

// Configure programs resolution, divider and clock select, then pulses the
// counter reset. The divider is clock<<8 / (freq<<bits); a pair the chosen
// clock cannot reach fails with ErrDivider. Retargeting the frequency of a
// timer with live channels is not supported.
func (t *Timer) Configure(cfg TimerConfig) error {
	if cfg.ResolutionBits == 0 || cfg.ResolutionBits > MaxResolution {
		return ErrResolution
	}
	if cfg.FrequencyHz == 0 {
		return ErrDivider
	}

	clk := uint64(apbClockHz)
	tick := uint32(timerTickSel)
	if cfg.Clock == ClockRefTick {
		clk = refTickClockHz
		tick = 0
	}
	div := (clk << 8) / (uint64(cfg.FrequencyHz) << cfg.ResolutionBits)
	if !mathx.Between(div, minDivider, maxDivider) {
		return ErrDivider
	}

	if t.speed == LowSpeed && cfg.Clock == ClockAPB {
		// Route the low-speed bank's slow clock to APB.
		modify(t.regs, regConf, 0, confAPBClkSel)
	}

	off := timerBase(t.speed, t.num) + regTimerConf
	conf := uint32(cfg.ResolutionBits)&timerResMask | uint32(div)<<timerDivShift | tick
	t.regs.Write(off, conf)
	t.regs.Write(off, conf|timerReset)
	t.regs.Write(off, conf)
	if t.speed == LowSpeed {
		t.regs.Write(off, conf|timerParaUp)
	}

	t.bits = cfg.ResolutionBits
	t.configured = true
	return nil
}

// Release returns the slot to the controller; the counter keeps running.
func (t *Timer) Release() {
	t.ctrl.releaseTimer(t.speed, t.num)
}
