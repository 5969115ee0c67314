package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPulses(t *testing.T, rate uint32) (*PulseGenerator, *MotionState, *fakeStepper, *fakeTimer) {
	t.Helper()
	cfg := DefaultConfig()
	motion := NewMotionState(cfg, rate)
	stepper := &fakeStepper{}
	timer := &fakeTimer{}
	p := NewPulseGenerator(motion, stepper, timer, cfg.PulseWidth)
	require.NoError(t, p.Init())
	return p, motion, stepper, timer
}

func TestPulseDutyCycle(t *testing.T) {
	for _, rate := range []uint32{26, 150, 1000, MaxRate} {
		p, _, stepper, timer := newTestPulses(t, rate)
		p.Enable()
		require.True(t, timer.running)
		require.Equal(t, rate-25, timer.first)

		for i := 0; i < 10; i++ {
			require.Equal(t, uint32(25), timer.handler(), "asserted phase, rate %d", rate)
			require.True(t, stepper.asserted)
			require.Equal(t, rate-25, timer.handler(), "deasserted phase, rate %d", rate)
			require.False(t, stepper.asserted)
		}
		require.Equal(t, 10, stepper.edges)
		require.Equal(t, uint32(10), p.Steps())
	}
}

func TestPulseFollowsRateChange(t *testing.T) {
	p, motion, _, _ := newTestPulses(t, 1000)
	p.Enable()

	require.Equal(t, uint32(25), p.Fire())
	motion.SetRate(500)
	require.Equal(t, uint32(475), p.Fire())
	require.Equal(t, uint32(25), p.Fire())
	require.Equal(t, uint32(475), p.Fire())
}

func TestPulseDirectionAndPosition(t *testing.T) {
	p, motion, stepper, _ := newTestPulses(t, 1000)
	p.Enable()

	for i := 0; i < 3; i++ {
		p.Fire()
		p.Fire()
	}
	require.Equal(t, int32(3), p.Position())
	require.False(t, stepper.reverse)

	motion.SetDirection(Reverse)
	for i := 0; i < 5; i++ {
		p.Fire()
		p.Fire()
	}
	require.True(t, stepper.reverse)
	require.Equal(t, 1, stepper.dirSets)
	require.Equal(t, int32(-2), p.Position())
	require.Equal(t, uint32(8), p.Steps())
}

func TestPulseDisable(t *testing.T) {
	p, _, stepper, timer := newTestPulses(t, 1000)
	p.Enable()
	p.Fire() // asserted

	p.Disable()
	require.False(t, timer.running)
	require.False(t, stepper.asserted)
	require.False(t, p.Enabled())

	// A latched compare after Stop must not toggle or re-arm
	require.Equal(t, uint32(0), p.Fire())
	require.False(t, stepper.asserted)

	// Enabling twice starts the timer once
	p.Enable()
	p.Enable()
	require.Equal(t, 2, timer.starts)
	require.Equal(t, uint32(25), p.Fire())
}

func TestPulseInitRejectsShortTimer(t *testing.T) {
	cfg := DefaultConfig()
	motion := NewMotionState(cfg, 1000)
	p := NewPulseGenerator(motion, &fakeStepper{}, &fakeTimer{max: 1000}, cfg.PulseWidth)
	require.Error(t, p.Init())
}

func TestMotionStateClampsRate(t *testing.T) {
	m := NewMotionState(DefaultConfig(), 0)
	require.Equal(t, uint32(26), m.Rate())

	require.Equal(t, uint32(MaxRate), m.SetRate(1<<20))
	require.Equal(t, uint32(26), m.SetRate(25))
	require.Equal(t, uint32(26), m.SetRate(26))
}
