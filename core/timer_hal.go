package core

// PulseHandler is the body of the pulse timer interrupt. It returns the
// interval in microseconds until the next compare match.
type PulseHandler func() uint32

// PulseTimer is a one-shot compare timer whose interrupt drives the step line.
// The interrupt handler calls the registered PulseHandler and re-arms the
// compare with the interval it returns.
type PulseTimer interface {
	// Init registers the interrupt handler. The timer stays stopped.
	Init(handler PulseHandler) error

	// Start enables the compare interrupt, first firing after us microseconds
	Start(us uint32)

	// Stop disables the compare interrupt source
	Stop()

	// MaxInterval returns the longest single-shot interval in microseconds
	MaxInterval() uint32
}

// Clock is a free-running millisecond counter used for guide timing
type Clock interface {
	Millis() uint32
}
