package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eqplatform/protocol"
)

type fakeStepper struct {
	asserted bool
	reverse  bool
	edges    int
	dirSets  int
	initErr  error
}

func (s *fakeStepper) Init() error { return s.initErr }
func (s *fakeStepper) SetStep(asserted bool) {
	if asserted && !s.asserted {
		s.edges++
	}
	s.asserted = asserted
}
func (s *fakeStepper) SetDirection(reverse bool) {
	s.reverse = reverse
	s.dirSets++
}
func (s *fakeStepper) Stop()           { s.asserted = false }
func (s *fakeStepper) GetName() string { return "fake" }

type fakeTimer struct {
	handler PulseHandler
	running bool
	first   uint32
	starts  int
	max     uint32
}

func (t *fakeTimer) Init(handler PulseHandler) error {
	t.handler = handler
	return nil
}
func (t *fakeTimer) Start(us uint32) {
	t.running = true
	t.first = us
	t.starts++
}
func (t *fakeTimer) Stop() { t.running = false }
func (t *fakeTimer) MaxInterval() uint32 {
	if t.max == 0 {
		return 262140
	}
	return t.max
}

type fakeEEPROM struct {
	words   map[uint16]uint16
	failAll bool
}

func newFakeEEPROM() *fakeEEPROM {
	return &fakeEEPROM{words: make(map[uint16]uint16)}
}

func (e *fakeEEPROM) ReadWord(index uint16) (uint16, error) {
	if e.failAll {
		return 0xFFFF, errors.New("bus error")
	}
	return e.words[index], nil
}

func (e *fakeEEPROM) WriteWord(index uint16, value uint16) error {
	if e.failAll {
		return errors.New("bus error")
	}
	e.words[index] = value
	return nil
}

// fakeClock advances one millisecond per read and calls onTick first,
// letting tests observe the controller while it busy-waits
type fakeClock struct {
	now    uint32
	onTick func()
}

func (c *fakeClock) Millis() uint32 {
	if c.onTick != nil {
		c.onTick()
	}
	c.now++
	return c.now
}

type testRig struct {
	ctrl    *Controller
	stepper *fakeStepper
	timer   *fakeTimer
	eeprom  *fakeEEPROM
	clock   *fakeClock
	out     *bytes.Buffer
}

func newRig(t *testing.T, persistedRate, boots uint16) *testRig {
	t.Helper()

	r := &testRig{
		stepper: &fakeStepper{},
		timer:   &fakeTimer{},
		eeprom:  newFakeEEPROM(),
		clock:   &fakeClock{},
		out:     &bytes.Buffer{},
	}
	r.eeprom.words[wordBootCount] = boots
	r.eeprom.words[wordRate] = persistedRate

	ctrl, err := Boot(Hardware{
		Stepper: r.stepper,
		Timer:   r.timer,
		EEPROM:  r.eeprom,
		Clock:   r.clock,
		Serial:  r.out,
	}, DefaultConfig())
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

// send feeds a command line through the receiver and runs the main loop once
func (r *testRig) send(t *testing.T, line string) string {
	t.Helper()
	r.out.Reset()
	_, err := r.ctrl.Receiver().Write([]byte(line + "\r"))
	require.NoError(t, err)
	require.True(t, r.ctrl.Poll())
	return r.out.String()
}

func (r *testRig) dispatch(op protocol.Opcode) State {
	return r.ctrl.Dispatch(protocol.Command{Op: op})
}
