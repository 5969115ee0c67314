package config

import (
	"eqplatform/core"
	"eqplatform/host/eeprom"
	"eqplatform/host/serial"
)

// Normalize fills in missing values with the platform defaults
func Normalize(cfg *Config) {
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = serial.DefaultBaud
	}
	if cfg.Serial.ReadTimeoutMs == 0 {
		cfg.Serial.ReadTimeoutMs = 100
	}

	if cfg.EEPROM.Path == "" {
		cfg.EEPROM.Path = "eeprom.bin"
	}
	if cfg.EEPROM.Size == 0 {
		cfg.EEPROM.Size = eeprom.DefaultSize
	}

	def := core.DefaultConfig()
	if cfg.Motion.PulseWidthUs == 0 {
		cfg.Motion.PulseWidthUs = def.PulseWidth
	}
	if cfg.Motion.FastRateUs == 0 {
		cfg.Motion.FastRateUs = def.FastRate
	}
	if cfg.Motion.DefaultRateUs == 0 {
		cfg.Motion.DefaultRateUs = def.DefaultRate
	}
	if cfg.Motion.QueueDepth == 0 {
		cfg.Motion.QueueDepth = def.QueueDepth
	}
}

// Core returns the controller constants described by the motion section
func (c *Config) Core() core.Config {
	return core.Config{
		PulseWidth:  c.Motion.PulseWidthUs,
		FastRate:    c.Motion.FastRateUs,
		DefaultRate: c.Motion.DefaultRateUs,
		QueueDepth:  c.Motion.QueueDepth,
	}
}

// SerialPort returns the serial port settings
func (c *Config) SerialPort() *serial.Config {
	return &serial.Config{
		Device:      c.Serial.Device,
		Baud:        c.Serial.Baud,
		ReadTimeout: c.Serial.ReadTimeoutMs,
	}
}
