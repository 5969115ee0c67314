//go:build rp2040

package main

import (
	"device/rp"
	"math"
	"runtime/interrupt"

	"eqplatform/core"
)

// The TinyGo runtime sleeps on ALARM0, so step pulses use ALARM1
const alarmMask = 1 << 1

// minLead is the shortest interval the alarm can be armed with reliably
const minLead = 2

// alarmTimer drives the step interrupt from TIMER ALARM1
type alarmTimer struct {
	handler core.PulseHandler
	irq     interrupt.Interrupt
}

var pulseTimer alarmTimer

// Init installs the ALARM1 interrupt at the highest priority
func (t *alarmTimer) Init(handler core.PulseHandler) error {
	t.handler = handler
	t.Stop()

	t.irq = interrupt.New(rp.IRQ_TIMER_IRQ_1, alarmInterrupt)
	t.irq.SetPriority(0x00)
	t.irq.Enable()
	return nil
}

// Start arms ALARM1 us microseconds from now
func (t *alarmTimer) Start(us uint32) {
	rp.TIMER.INTR.Set(alarmMask)
	rp.TIMER.INTE.SetBits(alarmMask)
	rp.TIMER.ALARM1.Set(GetHardwareTime() + max(us, minLead))
}

// Stop disarms ALARM1 and masks its interrupt
func (t *alarmTimer) Stop() {
	rp.TIMER.INTE.ClearBits(alarmMask)
	// Writing 1 to ARMED disarms the alarm
	rp.TIMER.ARMED.Set(alarmMask)
	rp.TIMER.INTR.Set(alarmMask)
}

// MaxInterval is the full 32-bit microsecond range of the alarm
func (t *alarmTimer) MaxInterval() uint32 {
	return math.MaxUint32
}

func alarmInterrupt(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(alarmMask)

	next := pulseTimer.handler()
	if next == 0 {
		return
	}

	// Schedule from the previous match so the period does not drift
	target := rp.TIMER.ALARM1.Get() + next
	now := GetHardwareTime()
	if int32(target-now) < minLead {
		target = now + minLead
	}
	rp.TIMER.ALARM1.Set(target)
}
