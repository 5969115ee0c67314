// Package serial opens the serial link the platform controller talks over
// when it runs on a desktop host.
package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the platform link
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud is the baud rate of the platform's serial link
const DefaultBaud = 57600

// DefaultConfig returns the default 57600 8N1 configuration
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100, // 100ms read timeout
	}
}

// ByteWriter adapts an io.Writer to io.ByteWriter. Each byte is written
// immediately, like a blocking UART transmit.
type ByteWriter struct {
	W   io.Writer
	one [1]byte
}

// WriteByte writes a single byte
func (b *ByteWriter) WriteByte(c byte) error {
	b.one[0] = c
	_, err := b.W.Write(b.one[:])
	return err
}
