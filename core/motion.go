package core

import "sync/atomic"

// Direction of rotation
type Direction uint32

const (
	Forward Direction = 0
	Reverse Direction = 1
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// MotionState holds the values shared between the dispatcher (writer) and
// the pulse interrupt (reader). Each field is a single atomic word so the
// interrupt can never observe a torn rate.
type MotionState struct {
	rate    atomic.Uint32
	dir     atomic.Uint32
	minRate uint32
}

// NewMotionState creates the shared state with an initial rate
func NewMotionState(cfg Config, rate uint32) *MotionState {
	m := &MotionState{minRate: cfg.MinRate()}
	m.SetRate(rate)
	return m
}

// SetRate stores the rate, clamped to [MinRate, MaxRate], and returns the
// value actually stored
func (m *MotionState) SetRate(us uint32) uint32 {
	if us < m.minRate {
		us = m.minRate
	}
	if us > MaxRate {
		us = MaxRate
	}
	m.rate.Store(us)
	return us
}

// Rate returns the current rate in µs between step edges
func (m *MotionState) Rate() uint32 {
	return m.rate.Load()
}

// SetDirection stores the direction
func (m *MotionState) SetDirection(d Direction) {
	m.dir.Store(uint32(d))
}

// Direction returns the current direction
func (m *MotionState) Direction() Direction {
	return Direction(m.dir.Load())
}
