package core

// StepperBackend defines the hardware abstraction for the step and
// direction lines of the single tracking motor.
type StepperBackend interface {
	// Init configures the step/direction hardware
	// Leaves the step line deasserted and direction forward
	Init() error

	// SetStep drives the step line
	// Called from the pulse interrupt, must not block
	SetStep(asserted bool)

	// SetDirection sets the direction output
	// reverse: true = reverse, false = forward
	SetDirection(reverse bool)

	// Stop forces the step line to its idle level
	Stop()

	// GetName returns backend implementation name
	GetName() string
}
