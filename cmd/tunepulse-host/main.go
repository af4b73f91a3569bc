// Command tunepulse-host reads an AS5047 encoder attached to a host SPI
// port and streams the tracked position, for bench-checking the sensor
// and wiring before flashing a target.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tunepulse/config"
	"tunepulse/drivers/periphenc"
	"tunepulse/encoder"
	"tunepulse/hal"
)

var (
	configPath = flag.String("config", "", "JSON config file (defaults to the built-in stepper profile)")
	spiPort    = flag.String("spi", "", "SPI port override, e.g. SPI0.0")
	interval   = flag.Duration("interval", 100*time.Millisecond, "Print interval")
)

func main() {
	flag.Parse()
	log := hal.NewLogger("tunepulse-host")

	cfg := config.DefaultStepperConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read config: %v\n", err)
			os.Exit(1)
		}
		cfg, err = config.LoadConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parse config: %v\n", err)
			os.Exit(1)
		}
	}
	port := cfg.Encoder.SPIPort
	if *spiPort != "" {
		port = *spiPort
	}

	sensor, err := periphenc.Open(port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sensor.Close()
	log.Infof("encoder on %s, sampling every %v", port, *interval)

	raw, err := sensor.ReadRawAngle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: first read: %v\n", err)
		os.Exit(1)
	}

	freq := uint16(time.Second / *interval)
	tracker := encoder.NewTracker(raw, freq, cfg.Control.FilterAlpha)

	for {
		time.Sleep(*interval)
		raw, err := sensor.ReadRawAngle()
		if err != nil {
			log.Warnf("read: %v", err)
			continue
		}
		pos := tracker.Tick(raw)
		fmt.Printf("angle=%5d  rotations=%4d  position=%10d  speed=%8d\n",
			tracker.Angle(), tracker.Rotations(), pos, tracker.Speed())
	}
}
