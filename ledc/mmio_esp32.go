//go:build esp32

package ledc

import (
	"runtime/volatile"
	"unsafe"
)

// LEDC register block base on the ESP32 APB.
const blockBase uintptr = 0x3FF5_9000

var blockClaimed bool

// Map hands out the hardware register block handle. All register access
// originates from this one handle: call Map once at startup, pass the
// result into New, and nothing else can alias the block. A second call
// fails with ErrBlockClaimed.
func Map() (RegisterIO, error) {
	if blockClaimed {
		return nil, ErrBlockClaimed
	}
	blockClaimed = true
	return mmio{}, nil
}

type mmio struct{}

func mmioReg(off uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(blockBase + uintptr(off)))
}

func (mmio) Read(off uint32) uint32     { return mmioReg(off).Get() }
func (mmio) Write(off uint32, v uint32) { mmioReg(off).Set(v) }
