//go:build rp2040

package main

import (
	"device/rp"
)

// hardwareClock reads the 1 MHz RP2040 timer
type hardwareClock struct{}

// Millis returns the low 32 bits of the millisecond uptime
func (hardwareClock) Millis() uint32 {
	return uint32(GetHardwareUptime() / 1000)
}

// GetHardwareTime reads the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return rp.TIMER.TIMERAWL.Get()
}

// GetHardwareUptime reads the full 64-bit microsecond counter
func GetHardwareUptime() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := rp.TIMER.TIMERAWH.Get()
		low := rp.TIMER.TIMERAWL.Get()
		high2 := rp.TIMER.TIMERAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
