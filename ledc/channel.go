package ledc

// Channel is one LEDC output: a claimed (speed, number) slot plus the pin
// it drives. A channel is inert until Configure binds a timer and programs
// the slot; after that SetDuty retargets the duty without re-wiring.
type Channel struct {
	regs  RegisterIO
	ctrl  *Controller
	speed Speed
	num   ChannelNum
	pin   OutputPin
	timer TimerSource
}

// Num returns the channel's slot number within its speed bank.
func (ch *Channel) Num() ChannelNum { return ch.num }

// Configure binds tm to the channel, programs the duty, then wires the slot.
// The binding is recorded before anything else, so a failed duty validation
// leaves the channel bound with the hardware untouched; the caller may fix
// the fraction or the timer and retry SetDuty without calling Configure
// again. There is no rollback of partially programmed state on failure.
func (ch *Channel) Configure(tm TimerSource, fraction float64) error {
	ch.timer = tm

	if err := ch.SetDuty(fraction); err != nil {
		return err
	}
	return ch.configureHW()
}

// SetDuty validates fraction against the bound timer's resolution and writes
// the quantized value to the duty register. Validation runs on every call,
// against whatever resolution the timer reports now.
func (ch *Channel) SetDuty(fraction float64) error {
	if ch.timer == nil {
		return ErrChannel
	}
	bits, ok := ch.timer.Resolution()
	if !ok {
		return ErrTimer
	}
	value, err := computeDuty(bits, fraction)
	if err != nil {
		return err
	}
	ch.setDutyHW(value)
	return nil
}

// configureHW programs everything in the slot except the duty value: pin to
// push-pull, phase offset zeroed, timer selected and output enabled, ramp
// machinery parked on a single immediate step, pin routed to the slot's
// GPIO-matrix line. Low-speed slots buffer all of it until the closing
// para_up latch; high-speed slots have no latch and apply as written.
func (ch *Channel) configureHW() error {
	if ch.timer == nil || !ch.timer.Configured() {
		return ErrTimer
	}

	ch.pin.SetToPushPullOutput()

	base := chanBase(ch.speed, ch.num)
	ch.regs.Write(base+regChHPoint, 0)
	modify(ch.regs, base+regChConf0, chTimerSelMask,
		chSigOutEn|uint32(ch.timer.Number())&chTimerSelMask)
	ch.regs.Write(base+regChConf1,
		chDutyStart|chDutyInc|1<<chDutyNumShift|1<<chDutyCycleShift|0<<chDutyScaleShift)
	ch.pin.ConnectPeripheralToOutput(outputSignal(ch.speed, ch.num))

	if ch.speed == LowSpeed {
		modify(ch.regs, base+regChConf0, 0, chParaUp)
	}
	return nil
}

// setDutyHW writes the duty register. The low 4 bits are the hardware's
// sub-step fraction field, always zero here.
func (ch *Channel) setDutyHW(value uint32) {
	ch.regs.Write(chanBase(ch.speed, ch.num)+regChDuty, value<<dutyFracBits)
}

// Release returns the slot to the controller. The pad keeps driving the last
// programmed duty; releasing is claim bookkeeping only.
func (ch *Channel) Release() {
	ch.ctrl.releaseChannel(ch.speed, ch.num)
}
