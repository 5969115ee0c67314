package core

import (
	"io"

	"eqplatform/protocol"
)

// State is the operating state of the platform
type State uint8

const (
	StateTracking State = iota
	StateFastSlew
	StateHold
	StateAwaitingCommand // Transient, only while a line is being dispatched
)

var stateNames = [...]string{
	StateTracking:        "Tracking",
	StateFastSlew:        "FastSlew",
	StateHold:            "Hold",
	StateAwaitingCommand: "AwaitingCommand",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Controller is the command dispatcher and state machine. All methods run in
// the main loop.
type Controller struct {
	cfg    Config
	motion *MotionState
	pulses *PulseGenerator
	store  *Store
	rx     *protocol.Receiver
	out    *protocol.Writer
	clock  Clock

	state       State
	dispatched  uint32
	lastDropped uint32
}

// NewController wires a controller. Boot is the usual way to obtain one.
func NewController(cfg Config, motion *MotionState, pulses *PulseGenerator, store *Store,
	rx *protocol.Receiver, serial io.ByteWriter, clock Clock) *Controller {
	return &Controller{
		cfg:    cfg,
		motion: motion,
		pulses: pulses,
		store:  store,
		rx:     rx,
		out:    protocol.NewWriter(serial),
		clock:  clock,
		state:  StateTracking,
	}
}

// Poll runs one iteration of the main loop: dispatch a pending line, if any,
// then hold the pulse interrupt in the state the current mode requires.
// It reports whether a line was dispatched.
func (c *Controller) Poll() bool {
	line, ok := c.rx.Next()
	if ok {
		c.Dispatch(protocol.Parse(line))
	}

	if dropped := c.rx.Dropped(); dropped != c.lastDropped {
		c.lastDropped = dropped
		RecordEvent(Event{Type: EvtDrop, State: uint8(c.state), Clock: c.clock.Millis(), Value1: dropped})
		DebugPrintln("[CTRL] command lines dropped: " + utoa(dropped))
	}

	switch c.state {
	case StateHold:
		if c.pulses.Enabled() {
			c.pulses.Disable()
		}
	case StateTracking, StateFastSlew:
		if !c.pulses.Enabled() {
			c.pulses.Enable()
		}
	}

	return ok
}

// Dispatch executes one command, sends the acknowledgement and returns the
// new operating state.
func (c *Controller) Dispatch(cmd protocol.Command) State {
	prev := c.state
	c.state = StateAwaitingCommand

	next := c.transition(prev, cmd)
	c.out.PutString(protocol.Ack)
	if err := c.out.Err(); err != nil {
		DebugPrintln("[CTRL] serial write failed: " + err.Error())
		c.out.ResetErr()
	}

	c.state = next
	c.dispatched++
	RecordEvent(Event{
		Type:   EvtDispatch,
		Op:     uint8(cmd.Op),
		State:  uint8(next),
		Clock:  c.clock.Millis(),
		Value1: c.motion.Rate(),
		Value2: uint32(c.motion.Direction()),
	})
	if next != prev && IsDebugEnabled() {
		// Queued so a slow debug UART never delays the next command
		DebugAsync("[CTRL] " + cmd.Op.String() + ": " + prev.String() + " -> " + next.String())
	}
	return next
}

// transition performs the side effects of cmd and returns the next state
func (c *Controller) transition(prev State, cmd protocol.Command) State {
	switch cmd.Op {
	case protocol.OpHold:
		c.apply(c.motion.Rate(), c.motion.Direction(), false)
		return StateHold

	case protocol.OpFastForward:
		c.apply(c.cfg.FastRate, Forward, true)
		return StateFastSlew

	case protocol.OpFastReverse:
		c.apply(c.cfg.FastRate, Reverse, true)
		return StateFastSlew

	case protocol.OpStatus:
		c.sendStatusHuman(prev)
		return prev

	case protocol.OpRequest:
		c.sendStatus()
		return prev

	case protocol.OpGuideForward:
		// Twice the speed for the pulse, interrupt state untouched
		c.apply(c.motion.Rate()/2, Forward, c.pulses.Enabled())
		c.busyWait(cmd.Duration)
		return c.restore()

	case protocol.OpGuideReverse:
		// The motor cannot turn back, so pause instead
		c.apply(c.motion.Rate(), c.motion.Direction(), false)
		c.busyWait(cmd.Duration)
		return c.restore()

	case protocol.OpSetRate:
		rate := c.cfg.ClampRate(cmd.Rate)
		c.store.WriteRate(uint16(rate))
		c.apply(rate, Forward, true)
		c.sendStatus()
		return StateTracking

	default:
		next := c.restore()
		c.out.PutUint(c.motion.Rate())
		return next
	}
}

// restore returns to steady tracking at the persisted rate
func (c *Controller) restore() State {
	c.apply(c.persistedRate(), Forward, true)
	return StateTracking
}

// persistedRate reads the rate from the store, falling back to the default
// when the stored value cannot drive the pulse generator
func (c *Controller) persistedRate() uint32 {
	rate := uint32(c.store.ReadRate())
	if rate < c.cfg.MinRate() {
		return c.cfg.DefaultRate
	}
	return rate
}

// apply updates rate, direction and the pulse interrupt as one step so the
// interrupt never sees a partial update
func (c *Controller) apply(rate uint32, dir Direction, enabled bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.motion.SetRate(rate)
	c.motion.SetDirection(dir)
	if enabled {
		c.pulses.start()
	} else {
		c.pulses.stop()
	}
}

// busyWait spins for ms milliseconds. Command intake stops meanwhile.
func (c *Controller) busyWait(ms uint32) {
	start := c.clock.Millis()
	for c.clock.Millis()-start < ms {
	}
}

// State returns the current operating state
func (c *Controller) State() State {
	return c.state
}

// Rate returns the current rate in µs
func (c *Controller) Rate() uint32 {
	return c.motion.Rate()
}

// Direction returns the current direction
func (c *Controller) Direction() Direction {
	return c.motion.Direction()
}

// Pulses returns the pulse generator
func (c *Controller) Pulses() *PulseGenerator {
	return c.pulses
}

// Store returns the persistent store
func (c *Controller) Store() *Store {
	return c.store
}

// Receiver returns the line receiver fed by the serial input
func (c *Controller) Receiver() *protocol.Receiver {
	return c.rx
}

// Dispatched returns the number of commands executed since boot
func (c *Controller) Dispatched() uint32 {
	return c.dispatched
}
