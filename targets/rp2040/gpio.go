//go:build rp2040

package main

import (
	"errors"
	"machine"

	"eqplatform/core"
)

// RPGPIODriver implements the GPIODriver interface for RP2040
type RPGPIODriver struct {
	// Track configured pins so SetPin stays a plain register write
	configuredPins [30]bool
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if int(pin) >= len(d.configuredPins) {
		return errors.New("invalid GPIO pin")
	}
	if d.configuredPins[pin] {
		// Already configured, this is OK
		return nil
	}

	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configuredPins[pin] = true
	return nil
}

// SetPin sets the pin to high (true) or low (false).
// Runs in the pulse interrupt, so it must not allocate.
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	if int(pin) >= len(d.configuredPins) || !d.configuredPins[pin] {
		return errPinNotOutput
	}
	machine.Pin(pin).Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	if int(pin) >= len(d.configuredPins) || !d.configuredPins[pin] {
		return false, errPinNotOutput
	}
	return machine.Pin(pin).Get(), nil
}

var errPinNotOutput = errors.New("GPIO pin not configured as output")
