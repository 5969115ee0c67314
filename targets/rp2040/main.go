//go:build rp2040

package main

import (
	"machine"
	"time"

	"eqplatform/core"
	"eqplatform/protocol"
)

// Pin assignment on the Pico carrier board. I2C0 keeps its default GP4/GP5.
const (
	pinStep core.GPIOPin = 10
	pinDir  core.GPIOPin = 11
	pinM0   core.GPIOPin = 12
	pinM1   core.GPIOPin = 13
	pinM2   core.GPIOPin = 14
)

var (
	// Debug counters
	bytesReceived uint32
	msgerrors     uint32
)

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitUSB()
	InitDebugUART()

	eeprom, err := NewI2CEEPROM(machine.I2C0)
	if err != nil {
		halt("eeprom: " + err.Error())
	}

	stepper := core.NewGPIOStepper(NewRPGPIODriver(), core.StepperPins{
		Step:      pinStep,
		Dir:       pinDir,
		Microstep: []core.GPIOPin{pinM0, pinM1, pinM2},
	})

	ctrl, err := core.Boot(core.Hardware{
		Stepper: stepper,
		Timer:   &pulseTimer,
		EEPROM:  eeprom,
		Clock:   hardwareClock{},
		Serial:  machine.Serial,
	}, core.DefaultConfig())
	if err != nil {
		halt("boot: " + err.Error())
	}

	// Start USB reader goroutine
	go usbReaderLoop(ctrl.Receiver())

	for {
		// Recover from panics in the main loop to prevent a firmware crash
		func() {
			defer func() {
				if r := recover(); r != nil {
					msgerrors++
					core.DebugPrintln("[MAIN] recovered from panic")
				}
			}()

			ctrl.Poll()
		}()

		// Yield to the reader goroutine
		time.Sleep(10 * time.Microsecond)
	}
}

// usbReaderLoop hands every received byte to the line receiver
func usbReaderLoop(rx *protocol.Receiver) {
	// Recover from panics to prevent a firmware crash
	defer func() {
		if r := recover(); r != nil {
			msgerrors++
			time.Sleep(100 * time.Millisecond)
			go usbReaderLoop(rx)
		}
	}()

	for {
		for USBAvailable() > 0 {
			data, err := USBRead()
			if err != nil {
				msgerrors++
				break
			}
			bytesReceived++
			rx.OnByte(data)
		}
		// Yield to avoid a busy loop
		time.Sleep(100 * time.Microsecond)
	}
}

// halt reports a fatal boot error and blinks the LED forever
func halt(reason string) {
	DebugPrintln("[MAIN] halted: " + reason)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
