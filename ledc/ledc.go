package ledc

import "sync"

// Speed selects one of the two LEDC register banks. They differ in one
// commit step: low-speed slots buffer configuration until a para_up latch.
type Speed uint8

const (
	HighSpeed Speed = iota
	LowSpeed
)

func (s Speed) String() string {
	if s == HighSpeed {
		return "hs"
	}
	return "ls"
}

// ChannelNum selects one of the eight channel slots within a speed bank.
type ChannelNum uint8

// TimerNum selects one of the four timer slots within a speed bank.
type TimerNum uint8

const (
	NumChannels = 8
	NumTimers   = 4
)

// Controller owns the register block handle and hands out channel and timer
// slots. A (speed, number) slot maps to a fixed set of register fields, so
// each slot can be claimed at most once at a time; a second claim while the
// first is live would mutably alias those fields.
//
// The claim bookkeeping is mutex-guarded. The register sequences behind the
// handles are not: a channel must stay with one owning execution context.
type Controller struct {
	regs RegisterIO

	mu       sync.Mutex
	channels [2]uint8 // claim bitmaps, indexed by Speed
	timers   [2]uint8
}

// New wraps a register block handle. Create the handle once (Map on
// hardware, NewRecorder on hosts) and pass it here; the controller is the
// only thing that should hold it afterwards.
func New(regs RegisterIO) *Controller {
	return &Controller{regs: regs}
}

// Channel claims a channel slot. Construction has no hardware side effect;
// the pin is first touched by Configure.
func (c *Controller) Channel(speed Speed, num ChannelNum, pin OutputPin) (*Channel, error) {
	if num >= NumChannels {
		return nil, ErrUnknownChannel
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bit := uint8(1) << num
	if c.channels[speed]&bit != 0 {
		return nil, ErrChannelInUse
	}
	c.channels[speed] |= bit
	return &Channel{regs: c.regs, ctrl: c, speed: speed, num: num, pin: pin}, nil
}

// Timer claims a timer slot. The timer is unconfigured until Configure runs.
func (c *Controller) Timer(speed Speed, num TimerNum) (*Timer, error) {
	if num >= NumTimers {
		return nil, ErrUnknownTimer
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bit := uint8(1) << num
	if c.timers[speed]&bit != 0 {
		return nil, ErrTimerInUse
	}
	c.timers[speed] |= bit
	return &Timer{regs: c.regs, ctrl: c, speed: speed, num: num}, nil
}

func (c *Controller) releaseChannel(speed Speed, num ChannelNum) {
	c.mu.Lock()
	c.channels[speed] &^= uint8(1) << num
	c.mu.Unlock()
}

func (c *Controller) releaseTimer(speed Speed, num TimerNum) {
	c.mu.Lock()
	c.timers[speed] &^= uint8(1) << num
	c.mu.Unlock()
}
