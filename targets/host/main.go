//go:build !tinygo

// Command host runs the platform controller on a desktop machine. The step
// and direction lines are simulated, the EEPROM is a file and the command
// link is a real serial port (or a pty from socat).
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"

	"eqplatform/config"
	"eqplatform/core"
	"eqplatform/host/eeprom"
	"eqplatform/host/serial"
)

// Simulated pin numbers, matching the reference board
const (
	pinStep core.GPIOPin = 8
	pinM0   core.GPIOPin = 9
	pinM1   core.GPIOPin = 10
	pinM2   core.GPIOPin = 11
	pinDir  core.GPIOPin = 13
)

func main() {
	configPath := flag.String("config", "eqsim.yaml", "path to the simulator configuration")
	device := flag.String("device", "", "serial device, overrides serial.device")
	debug := flag.Bool("debug", false, "log controller debug messages")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if err := config.Validate(cfg); err != nil {
		glog.Exitf("config: %v", err)
	}

	core.SetDebugWriter(func(s string) { glog.InfoDepth(1, s) })
	core.SetDebugEnabled(*debug || bool(glog.V(1)))
	core.InitAsyncDebug()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		glog.Errorf("simulator stopped: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	mem, err := eeprom.Open(cfg.EEPROM.Path, cfg.EEPROM.Size)
	if errors.Is(err, eeprom.ErrCorrupt) {
		glog.Warningf("%v, starting from an erased image", err)
	} else if err != nil {
		return err
	}

	port, err := serial.Open(cfg.SerialPort())
	if err != nil {
		return err
	}
	defer port.Close()
	if err := port.Flush(); err != nil {
		glog.Warningf("flush %s: %v", cfg.Serial.Device, err)
	}

	gpio := newSimGPIO(map[core.GPIOPin]string{
		pinStep: "step", pinDir: "dir", pinM0: "m0", pinM1: "m1", pinM2: "m2",
	})
	timer := &simTimer{}
	hw := core.Hardware{
		Stepper: core.NewGPIOStepper(gpio, core.StepperPins{
			Step:      pinStep,
			Dir:       pinDir,
			Microstep: []core.GPIOPin{pinM0, pinM1, pinM2},
		}),
		Timer:  timer,
		EEPROM: mem,
		Clock:  newWallClock(),
		Serial: &serial.ByteWriter{W: port},
	}

	ctrl, err := core.Boot(hw, cfg.Core())
	if err != nil {
		return err
	}
	glog.Infof("platform up on %s at %d baud, boot #%d, rate %dus",
		cfg.Serial.Device, cfg.Serial.Baud, ctrl.Store().BootCount(), ctrl.Rate())

	readErr := make(chan error, 1)
	go func() {
		readErr <- readLoop(ctx, port, ctrl)
	}()

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdown(ctrl)
			return nil
		case err := <-readErr:
			shutdown(ctrl)
			return err
		case <-ticker.C:
			for ctrl.Poll() {
			}
		}
	}
}

// readLoop feeds serial input to the controller until ctx is done
func readLoop(ctx context.Context, port io.Reader, ctrl *core.Controller) error {
	rx := ctrl.Receiver()
	buf := make([]byte, 64)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := port.Read(buf)
		if n > 0 {
			glog.V(3).Infof("RX %q", buf[:n])
			_, _ = rx.Write(buf[:n])
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
}

func shutdown(ctrl *core.Controller) {
	ctrl.Pulses().Disable()
	glog.Infof("stopped in %s: position %d, %d steps, %d commands, %d lines dropped",
		ctrl.State(), ctrl.Pulses().Position(), ctrl.Pulses().Steps(),
		ctrl.Dispatched(), ctrl.Receiver().Dropped())
	core.DumpEventRing()
}
