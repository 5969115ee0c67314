//go:build rp2040

package main

import (
	"machine"
)

// InitUSB initializes USB serial communication.
// On the Pico machine.Serial is USB CDC; the baud rate is nominal.
func InitUSB() {
	err := machine.Serial.Configure(machine.UARTConfig{BaudRate: 57600})
	if err != nil {
		return
	}
}

// USBAvailable returns the number of bytes available to read from USB
func USBAvailable() int {
	return machine.Serial.Buffered()
}

// USBRead reads a single byte from USB
func USBRead() (byte, error) {
	return machine.Serial.ReadByte()
}
