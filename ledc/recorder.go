package ledc

// RegWrite is one logged register write.
type RegWrite struct {
	Off uint32
	Val uint32
}

// Recorder is an in-memory register block. It backs the driver on hosts
// with no hardware: unit tests assert on the write log, cmd/ledcsim prints
// it. Reads return whatever was last written, zero otherwise.
type Recorder struct {
	mem    map[uint32]uint32
	Writes []RegWrite
}

func NewRecorder() *Recorder {
	return &Recorder{mem: make(map[uint32]uint32)}
}

func (r *Recorder) Read(off uint32) uint32 { return r.mem[off] }

func (r *Recorder) Write(off uint32, v uint32) {
	r.mem[off] = v
	r.Writes = append(r.Writes, RegWrite{Off: off, Val: v})
}

// Reset clears the write log but keeps register contents.
func (r *Recorder) Reset() { r.Writes = nil }

// RecorderPin is the matching OutputPin double.
type RecorderPin struct {
	PushPull bool
	Signals  []OutputSignal
}

func (p *RecorderPin) SetToPushPullOutput() { p.PushPull = true }

func (p *RecorderPin) ConnectPeripheralToOutput(sig OutputSignal) {
	p.Signals = append(p.Signals, sig)
}
