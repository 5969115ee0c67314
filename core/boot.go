package core

import (
	"errors"
	"io"

	"eqplatform/protocol"
)

// Hardware bundles the platform drivers the controller runs on
type Hardware struct {
	Stepper StepperBackend
	Timer   PulseTimer
	EEPROM  EEPROM
	Clock   Clock
	Serial  io.ByteWriter // Blocking serial output
}

// Boot brings the platform up: it counts the boot, loads the persisted rate,
// arms the pulse timer and enters Tracking. It must run before the serial
// reader starts feeding the returned controller's Receiver.
func Boot(hw Hardware, cfg Config) (*Controller, error) {
	if hw.Stepper == nil || hw.Timer == nil || hw.EEPROM == nil || hw.Clock == nil || hw.Serial == nil {
		return nil, errors.New("incomplete hardware description")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := hw.Stepper.Init(); err != nil {
		return nil, err
	}

	// Nothing else touches the store yet, see Store.IncrementBootCount
	store := NewStore(hw.EEPROM)
	boots := store.IncrementBootCount()

	motion := NewMotionState(cfg, cfg.DefaultRate)
	pulses := NewPulseGenerator(motion, hw.Stepper, hw.Timer, cfg.PulseWidth)
	if err := pulses.Init(); err != nil {
		return nil, err
	}

	rx := protocol.NewReceiver(cfg.QueueDepth)
	c := NewController(cfg, motion, pulses, store, rx, hw.Serial, hw.Clock)
	c.state = c.restore()

	RecordEvent(Event{Type: EvtBoot, State: uint8(c.state), Clock: hw.Clock.Millis(), Value1: uint32(boots), Value2: motion.Rate()})
	DebugPrintln("[BOOT] boot #" + utoa(uint32(boots)) + " rate=" + utoa(motion.Rate()) +
		" stepper=" + hw.Stepper.GetName())
	return c, nil
}
