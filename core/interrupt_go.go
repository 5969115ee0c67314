//go:build !tinygo

package core

import "sync"

// irqState is a placeholder for interrupt state on regular Go
type irqState uintptr

// irqLock stands in for the interrupt mask on regular Go. Critical sections
// and simulated interrupt handlers (ServiceInterrupt) exclude each other
// through it. Sections must not nest.
var irqLock sync.Mutex

// disableInterrupts enters a critical section
func disableInterrupts() irqState {
	irqLock.Lock()
	return 0
}

// restoreInterrupts leaves a critical section
func restoreInterrupts(state irqState) {
	irqLock.Unlock()
}

// ServiceInterrupt runs handler as if it were an interrupt service routine.
// Host simulators use it so their timer goroutines never observe a
// half-applied critical section.
func ServiceInterrupt(handler func()) {
	irqLock.Lock()
	defer irqLock.Unlock()
	handler()
}
