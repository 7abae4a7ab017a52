package ledc

// OutputPin is the pin capability a channel owns: electrical output mode
// plus a GPIO-matrix route from a peripheral signal to the pad. MatrixPin
// implements it on esp32 builds, RecorderPin on hosts.
type OutputPin interface {
	SetToPushPullOutput()
	ConnectPeripheralToOutput(sig OutputSignal)
}
