//go:build !tinygo

package main

import (
	"fmt"
	"sync"

	"github.com/golang/glog"

	"eqplatform/core"
)

// simGPIO keeps pin levels in memory
type simGPIO struct {
	mu         sync.Mutex
	configured map[core.GPIOPin]bool
	levels     map[core.GPIOPin]bool
	names      map[core.GPIOPin]string
}

func newSimGPIO(names map[core.GPIOPin]string) *simGPIO {
	return &simGPIO{
		configured: make(map[core.GPIOPin]bool),
		levels:     make(map[core.GPIOPin]bool),
		names:      names,
	}
}

// ConfigureOutput marks pin as an output driven low
func (g *simGPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.configured[pin] {
		return nil
	}
	g.configured[pin] = true
	g.levels[pin] = false
	glog.V(1).Infof("gpio%d (%s) configured as output", pin, g.name(pin))
	return nil
}

// SetPin drives an output. Called from the simulated pulse interrupt.
func (g *simGPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.configured[pin] {
		return fmt.Errorf("gpio%d is not an output", pin)
	}
	if g.levels[pin] != value {
		g.levels[pin] = value
		glog.V(2).Infof("gpio%d (%s) -> %t", pin, g.name(pin), value)
	}
	return nil
}

// GetPin returns the last level driven on pin
func (g *simGPIO) GetPin(pin core.GPIOPin) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.configured[pin] {
		return false, fmt.Errorf("gpio%d is not configured", pin)
	}
	return g.levels[pin], nil
}

func (g *simGPIO) name(pin core.GPIOPin) string {
	if n, ok := g.names[pin]; ok {
		return n
	}
	return "unused"
}
