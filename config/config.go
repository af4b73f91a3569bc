// Package config loads the drive configuration from JSON and builds the
// controller out of it.
package config

import (
	"encoding/json"
	"fmt"

	"tunepulse/hal"
	"tunepulse/motor"
)

// MotorConfig is the electrical description of the connected motor.
type MotorConfig struct {
	Type           string `json:"type"`
	PhasePattern   string `json:"phase_pattern"`
	PolePairs      int    `json:"pole_pairs"`
	ResistanceMOhm int32  `json:"resistance_mohm"`
	InductanceUH   int32  `json:"inductance_uh"`
	MaxCurrentMA   int32  `json:"max_current_ma"`
}

// SupplyConfig bounds the supply rail. MaxMV doubles as the voltage at
// full ADC scale.
type SupplyConfig struct {
	MaxMV int32 `json:"max_mv"`
	MinMV int32 `json:"min_mv"`
}

// ControlConfig sets the loop timing and input conditioning.
type ControlConfig struct {
	FrequencyHz uint16 `json:"frequency_hz"`
	FilterAlpha uint8  `json:"filter_alpha"`
	Probes      string `json:"current_probes"`
}

// PIDConfig holds the position loop gains in whole percent.
type PIDConfig struct {
	Kp    int32 `json:"kp"`
	Ki    int32 `json:"ki"`
	Kd    int32 `json:"kd"`
	Kff   int32 `json:"kff"`
	Limit int16 `json:"limit"`
}

// EncoderConfig names the angle sensor port.
type EncoderConfig struct {
	SPIPort string `json:"spi_port"`
}

// Config is the full drive configuration.
type Config struct {
	Motor   MotorConfig   `json:"motor"`
	Supply  SupplyConfig  `json:"supply"`
	Control ControlConfig `json:"control"`
	PID     PIDConfig     `json:"pid"`
	Encoder EncoderConfig `json:"encoder"`
}

// LoadConfig parses a JSON configuration and fills in defaults.
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *Config) {
	if config.Motor.Type == "" {
		config.Motor.Type = "stepper"
	}
	if config.Motor.PhasePattern == "" {
		config.Motor.PhasePattern = "abcd"
	}
	if config.Motor.PolePairs == 0 {
		config.Motor.PolePairs = 50 // standard 1.8 degree stepper
	}
	if config.Motor.ResistanceMOhm == 0 {
		config.Motor.ResistanceMOhm = 1000
	}
	if config.Motor.InductanceUH == 0 {
		config.Motor.InductanceUH = 1
	}
	if config.Motor.MaxCurrentMA == 0 {
		config.Motor.MaxCurrentMA = 1000
	}

	if config.Supply.MaxMV == 0 {
		config.Supply.MaxMV = 24000
	}
	if config.Supply.MinMV == 0 {
		config.Supply.MinMV = 8000
	}

	if config.Control.FrequencyHz == 0 {
		config.Control.FrequencyHz = 10000
	}
	if config.Control.Probes == "" {
		config.Control.Probes = "bi_abcd"
	}

	if config.PID.Limit == 0 {
		limit := config.Motor.MaxCurrentMA
		if limit > 32767 {
			limit = 32767
		}
		config.PID.Limit = int16(limit)
	}

	if config.Encoder.SPIPort == "" {
		config.Encoder.SPIPort = "SPI0.0"
	}
}

// Controller builds the drive controller described by the config.
func (c *Config) Controller(log hal.Logger) (*motor.Controller, error) {
	poleType, err := parseMotorType(c.Motor.Type)
	if err != nil {
		return nil, err
	}
	pattern, err := parsePhasePattern(c.Motor.PhasePattern)
	if err != nil {
		return nil, err
	}
	probes, err := parseProbes(c.Control.Probes)
	if err != nil {
		return nil, err
	}

	m := motor.NewMotor(c.Motor.ResistanceMOhm)
	m.PoleType = poleType
	m.Connection = pattern
	m.PoleCount = c.Motor.PolePairs
	m.InductanceUH = c.Motor.InductanceUH
	m.MaxCurrentMA = c.Motor.MaxCurrentMA
	m.MaxSupplyMV = c.Supply.MaxMV

	return motor.NewController(motor.Config{
		Motor:       m,
		Frequency:   c.Control.FrequencyHz,
		FilterAlpha: c.Control.FilterAlpha,
		Probes:      probes,
		SupplyMinMV: c.Supply.MinMV,
		SupplyMaxMV: c.Supply.MaxMV,
		PID: motor.PIDGains{
			Kp:    c.PID.Kp,
			Ki:    c.PID.Ki,
			Kd:    c.PID.Kd,
			Kff:   c.PID.Kff,
			Limit: c.PID.Limit,
		},
	}, log), nil
}

func parseMotorType(s string) (motor.Type, error) {
	switch s {
	case "dc":
		return motor.TypeDC, nil
	case "stepper":
		return motor.TypeStepper, nil
	case "bldc":
		return motor.TypeBLDC, nil
	default:
		return motor.TypeUndefined, fmt.Errorf("unknown motor type %q", s)
	}
}

func parsePhasePattern(s string) (motor.PhasePattern, error) {
	switch s {
	case "abcd":
		return motor.PatternABCD, nil
	case "acdb":
		return motor.PatternACDB, nil
	case "adbc":
		return motor.PatternADBC, nil
	case "dcab":
		return motor.PatternDCAB, nil
	default:
		return motor.PatternNone, fmt.Errorf("unknown phase pattern %q", s)
	}
}

func parseProbes(s string) (motor.Probes, error) {
	switch s {
	case "bi_ab":
		return motor.BiAB, nil
	case "bi_abc":
		return motor.BiABC, nil
	case "bi_abcd":
		return motor.BiABCD, nil
	case "uni_abcd":
		return motor.UniABCD, nil
	default:
		return 0, fmt.Errorf("unknown current probe layout %q", s)
	}
}

// DefaultStepperConfig returns a configuration for a common NEMA17-class
// stepper on a 24 V rail.
func DefaultStepperConfig() *Config {
	return &Config{
		Motor: MotorConfig{
			Type:           "stepper",
			PhasePattern:   "abcd",
			PolePairs:      50,
			ResistanceMOhm: 1800,
			InductanceUH:   3200,
			MaxCurrentMA:   1500,
		},
		Supply: SupplyConfig{
			MaxMV: 24000,
			MinMV: 8000,
		},
		Control: ControlConfig{
			FrequencyHz: 10000,
			FilterAlpha: 0,
			Probes:      "bi_abcd",
		},
		PID: PIDConfig{
			Kp:    200,
			Ki:    10,
			Kd:    50,
			Limit: 1500,
		},
		Encoder: EncoderConfig{
			SPIPort: "SPI0.0",
		},
	}
}
