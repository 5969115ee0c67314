package core

import "eqplatform/protocol"

const statusBanner = "~~~~~~~~~~ EQPlatform-PulseGuiding ~~~~~~~~~~\n\n"

// sendStatus transmits the machine-readable status: <rate>#<bootcount>#
func (c *Controller) sendStatus() {
	c.out.PutUint(c.motion.Rate())
	c.out.PutChar(protocol.FieldSeparator)
	c.out.PutUint(uint32(c.store.BootCount()))
	c.out.PutChar(protocol.FieldSeparator)
}

// sendStatusHuman transmits the status banner
func (c *Controller) sendStatusHuman(state State) {
	c.out.PutString(statusBanner)
	c.out.PutString("Firmware-Version: ")
	c.out.PutString(protocol.Version)
	c.out.PutChar('\n')
	c.out.PutString("Current Velocity: ")
	c.out.PutUint(c.motion.Rate())
	c.out.PutChar('\n')
	c.out.PutString("Default Velocity: ")
	c.out.PutUint(c.persistedRate())
	c.out.PutChar('\n')
	c.out.PutString("Operating State: ")
	c.out.PutString(state.String())
	c.out.PutString("\n\n")
	c.out.PutString("Number of starts: ")
	c.out.PutUint(uint32(c.store.BootCount()))
	c.out.PutString("\n\n")
}
