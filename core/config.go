package core

import (
	"errors"
	"math"
)

// MaxRate is the largest rate that fits the persisted 16-bit word
const MaxRate = math.MaxUint16

// Config holds the motion constants of the platform
type Config struct {
	PulseWidth  uint32 // Asserted portion of each step, µs
	FastRate    uint32 // Rate used while fast slewing, µs
	DefaultRate uint32 // Tracking rate when nothing valid is persisted, µs
	QueueDepth  int    // Completed lines that may wait for dispatch
}

// DefaultConfig returns the constants of the reference platform
func DefaultConfig() Config {
	return Config{
		PulseWidth:  25,
		FastRate:    150,
		DefaultRate: 1000,
		QueueDepth:  1,
	}
}

// MinRate is the smallest rate whose deasserted interval is non-zero
func (c Config) MinRate() uint32 {
	return c.PulseWidth + 1
}

// ClampRate bounds us to [MinRate, MaxRate]
func (c Config) ClampRate(us uint32) uint32 {
	if us < c.MinRate() {
		return c.MinRate()
	}
	if us > MaxRate {
		return MaxRate
	}
	return us
}

// Validate checks the constants against each other
func (c Config) Validate() error {
	if c.PulseWidth == 0 {
		return errors.New("pulse width must be non-zero")
	}
	if c.MinRate() > MaxRate {
		return errors.New("pulse width leaves no valid rate")
	}
	if c.FastRate < c.MinRate() || c.FastRate > MaxRate {
		return errors.New("fast rate out of range")
	}
	if c.DefaultRate < c.MinRate() || c.DefaultRate > MaxRate {
		return errors.New("default rate out of range")
	}
	if c.QueueDepth < 1 {
		return errors.New("queue depth must be at least 1")
	}
	return nil
}
