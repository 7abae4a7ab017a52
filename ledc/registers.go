// Package ledc drives the ESP32 LED-PWM (LEDC) peripheral: sixteen PWM
// output channels in two banks, each channel bound to one of four per-bank
// timers. Low-speed registers are double-buffered and take effect on an
// explicit para_up latch; high-speed registers apply as written.
package ledc

// Register offsets and bitfields, relative to the block base. Layout and
// field positions are fixed by the hardware.
const (
	// --- Per-channel register slots ---
	// Eight slots per speed bank, 0x14 bytes apart. High-speed bank first.
	hsChanBase = 0x000
	lsChanBase = 0x0A0
	chanStride = 0x14

	regChConf0  = 0x00 // timer select, output enable, (LS) para_up
	regChHPoint = 0x04 // phase offset within the period
	regChDuty   = 0x08 // duty target, 4 fractional bits
	regChConf1  = 0x0C // duty-ramp machinery
	regChDutyR  = 0x10 // current duty readback (RO)

	// --- CHn_CONF0 fields ---
	chTimerSelMask = 0x3 // [1:0]
	chSigOutEn     = 1 << 2
	chIdleLevel    = 1 << 3
	chParaUp       = 1 << 4 // LS only: latch pending channel config

	// --- CHn_CONF1 fields ---
	chDutyScaleShift = 0  // [9:0]
	chDutyCycleShift = 10 // [19:10]
	chDutyNumShift   = 20 // [29:20]
	chDutyInc        = 1 << 30
	chDutyStart      = 1 << 31

	// Reserved sub-step fraction bits at the bottom of CHn_DUTY.
	dutyFracBits = 4

	// --- Per-timer register slots ---
	hsTimerBase = 0x140
	lsTimerBase = 0x160
	timerStride = 0x08

	regTimerConf  = 0x00
	regTimerValue = 0x04 // current counter (RO)

	// --- TIMERn_CONF fields ---
	timerResMask  = 0x1F // [4:0] duty resolution in bits
	timerDivShift = 5    // [22:5] clock divider, 10.8 fixed point
	timerDivMask  = 0x3FFFF
	timerPause    = 1 << 23
	timerReset    = 1 << 24
	timerTickSel  = 1 << 25 // HS: count APB_CLK instead of REF_TICK
	timerParaUp   = 1 << 26 // LS only: latch pending timer config

	// --- Global registers ---
	regIntRaw = 0x180
	regIntSt  = 0x184
	regIntEna = 0x188
	regIntClr = 0x18C
	regConf   = 0x190

	// --- CONF fields ---
	confAPBClkSel = 1 << 0 // LS slow clock source: APB_CLK when set
)

// OutputSignal identifies a GPIO-matrix output line.
type OutputSignal uint16

// GPIO-matrix signal numbers of the sixteen LEDC outputs. Each (speed,
// channel) slot drives one fixed line.
const (
	sigOutHS0 OutputSignal = 71 // LEDC_HS_SIG_OUT0 .. 7
	sigOutLS0 OutputSignal = 79 // LEDC_LS_SIG_OUT0 .. 7
)

func outputSignal(speed Speed, num ChannelNum) OutputSignal {
	if speed == HighSpeed {
		return sigOutHS0 + OutputSignal(num)
	}
	return sigOutLS0 + OutputSignal(num)
}

func chanBase(speed Speed, num ChannelNum) uint32 {
	if speed == HighSpeed {
		return hsChanBase + chanStride*uint32(num)
	}
	return lsChanBase + chanStride*uint32(num)
}

func timerBase(speed Speed, num TimerNum) uint32 {
	if speed == HighSpeed {
		return hsTimerBase + timerStride*uint32(num)
	}
	return lsTimerBase + timerStride*uint32(num)
}
