package ledc

// RegisterIO is 32-bit access to the LEDC register block, addressed by byte
// offset from the block base. Map (esp32 builds) returns the MMIO
// implementation; Recorder stands in on hosts.
type RegisterIO interface {
	Read(off uint32) uint32
	Write(off uint32, v uint32)
}

// modify read-modify-writes a register, clearing then setting field bits.
func modify(r RegisterIO, off, clear, set uint32) {
	r.Write(off, r.Read(off)&^clear|set)
}
