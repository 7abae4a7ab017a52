//go:build esp32

package ledc

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

// GPIO matrix: one out-select register per pad, 4 bytes apart.
const gpioFuncOutSelBase uintptr = 0x3FF4_4530

// MatrixPin drives a pad from a LEDC output line through the GPIO matrix.
type MatrixPin struct {
	Pin machine.Pin
}

func (p MatrixPin) SetToPushPullOutput() {
	p.Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (p MatrixPin) ConnectPeripheralToOutput(sig OutputSignal) {
	r := (*volatile.Register32)(unsafe.Pointer(gpioFuncOutSelBase + 4*uintptr(p.Pin)))
	r.Set(uint32(sig))
}
