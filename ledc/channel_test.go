package ledc

import (
	"errors"
	"testing"
)

// fakeTimer implements TimerSource without any hardware behind it.
type fakeTimer struct {
	num        TimerNum
	bits       uint8
	hasRes     bool
	configured bool
}

func (f *fakeTimer) Configured() bool          { return f.configured }
func (f *fakeTimer) Resolution() (uint8, bool) { return f.bits, f.hasRes }
func (f *fakeTimer) Number() TimerNum          { return f.num }

func newTestChannel(t *testing.T, speed Speed, num ChannelNum) (*Channel, *Recorder, *RecorderPin) {
	t.Helper()
	rec := NewRecorder()
	pin := &RecorderPin{}
	ch, err := New(rec).Channel(speed, num, pin)
	if err != nil {
		t.Fatalf("claim %v channel %d: %v", speed, num, err)
	}
	return ch, rec, pin
}

func TestSetDutyWithoutTimerBinding(t *testing.T) {
	ch, rec, _ := newTestChannel(t, HighSpeed, 0)
	if err := ch.SetDuty(0.5); !errors.Is(err, ErrChannel) {
		t.Fatalf("SetDuty error = %v, want ErrChannel", err)
	}
	if len(rec.Writes) != 0 {
		t.Fatalf("expected no register writes, got %v", rec.Writes)
	}
}

func TestConfigureWithUnconfiguredTimerKeepsBinding(t *testing.T) {
	ch, rec, _ := newTestChannel(t, HighSpeed, 0)
	tm := &fakeTimer{num: 0}

	if err := ch.Configure(tm, 0.5); !errors.Is(err, ErrTimer) {
		t.Fatalf("Configure error = %v, want ErrTimer", err)
	}
	if len(rec.Writes) != 0 {
		t.Fatalf("expected no register writes, got %v", rec.Writes)
	}

	// The binding was recorded anyway: a retry consults the same timer and
	// fails on it, not on a missing binding.
	if err := ch.SetDuty(0.5); !errors.Is(err, ErrTimer) {
		t.Fatalf("SetDuty after failed Configure = %v, want ErrTimer", err)
	}

	// Once the timer comes up, the same channel recovers without rebinding.
	tm.bits, tm.hasRes, tm.configured = 8, true, true
	if err := ch.SetDuty(0.5); err != nil {
		t.Fatalf("SetDuty after timer configured: %v", err)
	}
}

func TestConfigureDutyErrorLeavesHardwareUntouched(t *testing.T) {
	ch, rec, pin := newTestChannel(t, LowSpeed, 2)
	tm := &fakeTimer{num: 1, bits: 8, hasRes: true, configured: true}

	if err := ch.Configure(tm, 2.0); !errors.Is(err, ErrDuty) {
		t.Fatalf("Configure error = %v, want ErrDuty", err)
	}
	if len(rec.Writes) != 0 || pin.PushPull || len(pin.Signals) != 0 {
		t.Fatal("failed duty validation must not touch hardware")
	}
}

func TestConfigureHalfProgrammedWhenTimerStops(t *testing.T) {
	// Resolution available but the timer reports itself unconfigured at
	// programming time: the duty write lands, the wiring does not.
	ch, rec, pin := newTestChannel(t, HighSpeed, 1)
	tm := &fakeTimer{num: 0, bits: 8, hasRes: true, configured: false}

	if err := ch.Configure(tm, 0.5); !errors.Is(err, ErrTimer) {
		t.Fatalf("Configure error = %v, want ErrTimer", err)
	}
	if len(rec.Writes) != 1 || rec.Writes[0].Off != chanBase(HighSpeed, 1)+regChDuty {
		t.Fatalf("expected only the duty write, got %v", rec.Writes)
	}
	if pin.PushPull {
		t.Fatal("pin must not be touched before the timer precondition holds")
	}
}

func TestConfigureSequenceHighSpeed(t *testing.T) {
	ch, rec, pin := newTestChannel(t, HighSpeed, 3)
	tm := &fakeTimer{num: 1, bits: 8, hasRes: true, configured: true}

	if err := ch.Configure(tm, 0.5); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	base := chanBase(HighSpeed, 3)
	want := []RegWrite{
		{base + regChDuty, 128 << dutyFracBits},
		{base + regChHPoint, 0},
		{base + regChConf0, chSigOutEn | 1},
		{base + regChConf1, chDutyStart | chDutyInc | 1<<chDutyNumShift | 1<<chDutyCycleShift},
	}
	if len(rec.Writes) != len(want) {
		t.Fatalf("writes = %v, want %v", rec.Writes, want)
	}
	for i, w := range want {
		if rec.Writes[i] != w {
			t.Fatalf("write[%d] = %+v, want %+v", i, rec.Writes[i], w)
		}
	}
	if !pin.PushPull {
		t.Fatal("pin not put into push-pull output mode")
	}
	if len(pin.Signals) != 1 || pin.Signals[0] != sigOutHS0+3 {
		t.Fatalf("pin signals = %v, want [%d]", pin.Signals, sigOutHS0+3)
	}
}

func TestConfigureSequenceLowSpeedCommitsLast(t *testing.T) {
	ch, rec, pin := newTestChannel(t, LowSpeed, 5)
	tm := &fakeTimer{num: 2, bits: 13, hasRes: true, configured: true}

	if err := ch.Configure(tm, 0.25); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	base := chanBase(LowSpeed, 5)
	last := rec.Writes[len(rec.Writes)-1]
	if last.Off != base+regChConf0 || last.Val&chParaUp == 0 {
		t.Fatalf("last write = %+v, want para_up latch on lsch5_conf0", last)
	}
	// One more write than the high-speed sequence, and only the latch write
	// carries para_up.
	if len(rec.Writes) != 5 {
		t.Fatalf("writes = %v, want 5 entries", rec.Writes)
	}
	for _, w := range rec.Writes[:len(rec.Writes)-1] {
		if w.Off == base+regChConf0 && w.Val&chParaUp != 0 {
			t.Fatalf("para_up set before the end of the sequence: %v", rec.Writes)
		}
	}
	if pin.Signals[0] != sigOutLS0+5 {
		t.Fatalf("pin signal = %d, want %d", pin.Signals[0], sigOutLS0+5)
	}
}

func TestHighSpeedSequenceHasNoCommit(t *testing.T) {
	ch, rec, _ := newTestChannel(t, HighSpeed, 5)
	tm := &fakeTimer{num: 2, bits: 13, hasRes: true, configured: true}

	if err := ch.Configure(tm, 0.25); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	for _, w := range rec.Writes {
		if w.Val&chParaUp != 0 && w.Off == chanBase(HighSpeed, 5)+regChConf0 {
			t.Fatalf("high-speed sequence wrote a para_up latch: %v", rec.Writes)
		}
	}
	if len(rec.Writes) != 4 {
		t.Fatalf("writes = %v, want 4 entries", rec.Writes)
	}
}

func TestSetDutyIdempotent(t *testing.T) {
	ch, rec, _ := newTestChannel(t, HighSpeed, 0)
	tm := &fakeTimer{num: 0, bits: 8, hasRes: true, configured: true}
	if err := ch.Configure(tm, 0.5); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	rec.Reset()
	if err := ch.SetDuty(0.25); err != nil {
		t.Fatalf("SetDuty: %v", err)
	}
	if err := ch.SetDuty(0.25); err != nil {
		t.Fatalf("SetDuty: %v", err)
	}
	if len(rec.Writes) != 2 || rec.Writes[0] != rec.Writes[1] {
		t.Fatalf("expected two identical duty writes, got %v", rec.Writes)
	}
	want := RegWrite{chanBase(HighSpeed, 0) + regChDuty, 64 << dutyFracBits}
	if rec.Writes[0] != want {
		t.Fatalf("duty write = %+v, want %+v", rec.Writes[0], want)
	}
}

func TestSetDutyRevalidatesAgainstCurrentResolution(t *testing.T) {
	ch, _, _ := newTestChannel(t, HighSpeed, 0)
	tm := &fakeTimer{num: 0, bits: 8, hasRes: true, configured: true}
	if err := ch.Configure(tm, 0.004); err != nil {
		t.Fatalf("Configure: %v", err) // floor(256*0.004) = 1
	}

	// The same fraction underflows once the timer narrows.
	tm.bits = 4
	if err := ch.SetDuty(0.004); !errors.Is(err, ErrDuty) {
		t.Fatalf("SetDuty after narrowing = %v, want ErrDuty", err)
	}
}
