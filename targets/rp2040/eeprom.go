//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/at24cx"
)

// writeCycle is the AT24Cxx self-timed write time
const writeCycle = 5 * time.Millisecond

// I2CEEPROM stores 16-bit little-endian words in an AT24Cxx on I2C
type I2CEEPROM struct {
	dev at24cx.Device
}

// NewI2CEEPROM configures bus and the EEPROM at its default address
func NewI2CEEPROM(bus *machine.I2C) (*I2CEEPROM, error) {
	err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		// SDA=GP4, SCL=GP5 by default for I2C0
	})
	if err != nil {
		return nil, err
	}

	e := &I2CEEPROM{dev: at24cx.New(bus)}
	e.dev.Configure(at24cx.Config{})
	return e, nil
}

// ReadWord reads the word at word index
func (e *I2CEEPROM) ReadWord(index uint16) (uint16, error) {
	addr := index * 2
	lo, err := e.dev.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := e.dev.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// WriteWord writes the word at word index, waiting out each write cycle
func (e *I2CEEPROM) WriteWord(index, value uint16) error {
	addr := index * 2
	if err := e.dev.WriteByte(addr, uint8(value)); err != nil {
		return err
	}
	time.Sleep(writeCycle)
	if err := e.dev.WriteByte(addr+1, uint8(value>>8)); err != nil {
		return err
	}
	time.Sleep(writeCycle)
	return nil
}
