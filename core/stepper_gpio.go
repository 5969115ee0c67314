package core

// StepperPins describes how the stepper driver is wired
type StepperPins struct {
	Step       GPIOPin
	Dir        GPIOPin
	Microstep  []GPIOPin // Mode select pins, driven high for 1/32 stepping
	InvertStep bool
	InvertDir  bool
}

// GPIOStepper implements StepperBackend with plain GPIO writes.
// Pulse width is timed by the pulse interrupt, not by the backend.
type GPIOStepper struct {
	gpio GPIODriver
	pins StepperPins
}

// NewGPIOStepper creates a GPIO-based stepper backend
func NewGPIOStepper(gpio GPIODriver, pins StepperPins) *GPIOStepper {
	return &GPIOStepper{gpio: gpio, pins: pins}
}

// Init configures step, direction and microstep pins as outputs
func (s *GPIOStepper) Init() error {
	if err := s.gpio.ConfigureOutput(s.pins.Step); err != nil {
		return err
	}
	if err := s.gpio.ConfigureOutput(s.pins.Dir); err != nil {
		return err
	}
	for _, pin := range s.pins.Microstep {
		if err := s.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := s.gpio.SetPin(pin, true); err != nil {
			return err
		}
	}

	s.Stop()
	s.SetDirection(false)

	DebugPrintln("[STEP] GPIO stepper initialized: step=" + utoa(uint32(s.pins.Step)) +
		" dir=" + utoa(uint32(s.pins.Dir)))
	return nil
}

// SetStep drives the step line, honoring inversion
func (s *GPIOStepper) SetStep(asserted bool) {
	_ = s.gpio.SetPin(s.pins.Step, asserted != s.pins.InvertStep)
}

// SetDirection sets the direction output
func (s *GPIOStepper) SetDirection(reverse bool) {
	_ = s.gpio.SetPin(s.pins.Dir, reverse != s.pins.InvertDir)
}

// Stop ensures the step pin is in idle state
func (s *GPIOStepper) Stop() {
	s.SetStep(false)
}

// GetName returns the backend name
func (s *GPIOStepper) GetName() string {
	return "GPIO"
}
