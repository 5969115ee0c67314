//go:build !tinygo

package main

import (
	"math"
	"sync"
	"time"

	"eqplatform/core"
)

// simTimer emulates the one-shot compare timer with time.AfterFunc. Each
// expiry runs the handler through core.ServiceInterrupt and re-arms with the
// returned interval. Start and Stop bump a generation so an expiry already in
// flight is discarded.
//
// Lock order is the interrupt lock, then mu. mu is never held while entering
// core.ServiceInterrupt.
type simTimer struct {
	mu      sync.Mutex
	handler core.PulseHandler
	timer   *time.Timer
	gen     uint64
	fired   uint64
}

// Init registers the interrupt handler
func (s *simTimer) Init(handler core.PulseHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
	return nil
}

// Start arms the first expiry after us microseconds
func (s *simTimer) Start(us uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.arm(s.gen, us)
}

// Stop cancels any pending expiry
func (s *simTimer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
}

// MaxInterval is unbounded for practical purposes
func (s *simTimer) MaxInterval() uint32 {
	return math.MaxUint32
}

// Fired returns the number of handler invocations
func (s *simTimer) Fired() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// cancel must be called with mu held
func (s *simTimer) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// arm must be called with mu held
func (s *simTimer) arm(gen uint64, us uint32) {
	s.timer = time.AfterFunc(time.Duration(us)*time.Microsecond, func() {
		s.expire(gen)
	})
}

func (s *simTimer) expire(gen uint64) {
	var next uint32
	core.ServiceInterrupt(func() {
		s.mu.Lock()
		current := gen == s.gen && s.handler != nil
		if current {
			s.fired++
		}
		handler := s.handler
		s.mu.Unlock()

		if current {
			next = handler()
		}
	})

	if next == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.arm(gen, next)
	}
}

// wallClock counts milliseconds since the simulator started
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

// Millis wraps after about 49 days like the hardware counter
func (c *wallClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
