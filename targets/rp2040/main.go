//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"tunepulse/analog"
	"tunepulse/app"
	"tunepulse/config"
	"tunepulse/hal"
)

// tickInterval paces the two hardware phases of each control period:
// 20 kHz ticks give the controller its 10 kHz rate.
const tickInterval = 50 * time.Microsecond

func main() {
	// Clear any watchdog state left over from a previous reset.
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	cfg := config.DefaultStepperConfig()
	cfg.Control.Probes = "bi_ab" // this board carries two shunt amplifiers

	ctl, err := cfg.Controller(hal.Discard)
	if err != nil {
		println("controller init:", err.Error())
		return
	}

	sensor, err := newEncoder()
	if err != nil {
		println("encoder init:", err.Error())
		return
	}
	pwm, err := newQuadPWM()
	if err != nil {
		println("pwm init:", err.Error())
		return
	}

	corr := analog.NewCorrection(analog.VRefApproximated(3300, 1212))
	loop := app.NewLoop(sensor, newAnalogBurst(), pwm, ctl, corr, hal.Discard)
	loop.SetCurrent(0)

	for {
		if err := loop.Tick(); err != nil {
			println("tick:", err.Error())
		}
		time.Sleep(tickInterval)
	}
}
