package core

// Step pulse generation
// The step line is toggled from a one-shot compare interrupt. Each asserted
// phase lasts PulseWidth, each deasserted phase lasts Rate - PulseWidth, so
// one full step period equals Rate.

import (
	"errors"
	"sync/atomic"
)

// PulseGenerator owns the step line and the pulse timer
type PulseGenerator struct {
	motion     *MotionState
	backend    StepperBackend
	timer      PulseTimer
	pulseWidth uint32

	// Interrupt-owned; touched from main context only inside a critical
	// section with the timer stopped
	asserted   bool
	appliedDir Direction

	enabled  atomic.Bool
	position atomic.Int32 // Signed step count, forward positive
	steps    atomic.Uint32
}

// NewPulseGenerator creates a pulse generator for the given hardware
func NewPulseGenerator(motion *MotionState, backend StepperBackend, timer PulseTimer, pulseWidth uint32) *PulseGenerator {
	return &PulseGenerator{
		motion:     motion,
		backend:    backend,
		timer:      timer,
		pulseWidth: pulseWidth,
	}
}

// Init registers Fire as the timer interrupt handler. The generator starts
// disabled.
func (p *PulseGenerator) Init() error {
	if p.timer.MaxInterval() < MaxRate {
		return errors.New("pulse timer cannot encode the maximum rate")
	}
	return p.timer.Init(p.Fire)
}

// Fire is the pulse timer interrupt body. It toggles the step line and
// returns the interval until the next toggle, or 0 when the generator is
// disabled and the timer must not be re-armed.
func (p *PulseGenerator) Fire() uint32 {
	// A compare match latched just before Stop
	if !p.enabled.Load() {
		return 0
	}

	p.asserted = !p.asserted

	if !p.asserted {
		p.backend.SetStep(false)
		return p.motion.Rate() - p.pulseWidth
	}

	// Direction must settle before the step edge
	if dir := p.motion.Direction(); dir != p.appliedDir {
		p.backend.SetDirection(dir == Reverse)
		p.appliedDir = dir
	}
	p.backend.SetStep(true)

	if p.appliedDir == Forward {
		p.position.Add(1)
	} else {
		p.position.Add(-1)
	}
	p.steps.Add(1)

	return p.pulseWidth
}

// Enable starts pulse generation
func (p *PulseGenerator) Enable() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	p.start()
}

// Disable suspends pulse generation and idles the step line
func (p *PulseGenerator) Disable() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	p.stop()
}

// start must be called inside a critical section
func (p *PulseGenerator) start() {
	if p.enabled.Load() {
		return
	}
	p.enabled.Store(true)
	// The line is idle, so the first edge asserts after a full low phase
	p.timer.Start(p.motion.Rate() - p.pulseWidth)
}

// stop must be called inside a critical section
func (p *PulseGenerator) stop() {
	if !p.enabled.Load() {
		return
	}
	p.enabled.Store(false)
	p.timer.Stop()
	p.asserted = false
	p.backend.Stop()
}

// Enabled reports whether the pulse interrupt is active
func (p *PulseGenerator) Enabled() bool {
	return p.enabled.Load()
}

// Position returns the signed number of steps taken since boot
func (p *PulseGenerator) Position() int32 {
	return p.position.Load()
}

// Steps returns the total number of step pulses since boot
func (p *PulseGenerator) Steps() uint32 {
	return p.steps.Load()
}
