package config

import (
	"testing"

	"github.com/edaniels/golog"

	"tunepulse/motor"
)

func TestLoadConfig(t *testing.T) {
	jsonData := []byte(`{
		"motor": {
			"type": "bldc",
			"phase_pattern": "acdb",
			"pole_pairs": 7,
			"resistance_mohm": 120,
			"max_current_ma": 8000
		},
		"supply": {"max_mv": 12000, "min_mv": 6000},
		"control": {"frequency_hz": 20000, "filter_alpha": 64, "current_probes": "bi_abc"},
		"pid": {"kp": 300, "ki": 20}
	}`)

	cfg, err := LoadConfig(jsonData)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Motor.Type != "bldc" || cfg.Motor.PolePairs != 7 {
		t.Errorf("motor section = %+v", cfg.Motor)
	}
	if cfg.Control.FrequencyHz != 20000 {
		t.Errorf("frequency = %d, want 20000", cfg.Control.FrequencyHz)
	}
	// Unset values come back as defaults.
	if cfg.Motor.InductanceUH != 1 {
		t.Errorf("inductance default = %d, want 1", cfg.Motor.InductanceUH)
	}
	if cfg.PID.Limit != 8000 {
		t.Errorf("pid limit default = %d, want max current 8000", cfg.PID.Limit)
	}
	if cfg.Encoder.SPIPort != "SPI0.0" {
		t.Errorf("spi port default = %q", cfg.Encoder.SPIPort)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Motor.Type != "stepper" {
		t.Errorf("default motor type = %q, want stepper", cfg.Motor.Type)
	}
	if cfg.Supply.MaxMV != 24000 || cfg.Supply.MinMV != 8000 {
		t.Errorf("default supply window = %+v", cfg.Supply)
	}
	if cfg.Control.FrequencyHz != 10000 {
		t.Errorf("default frequency = %d", cfg.Control.FrequencyHz)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig([]byte(`{"motor": [`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestControllerFromConfig(t *testing.T) {
	ctl, err := DefaultStepperConfig().Controller(golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("Controller: %v", err)
	}
	if ctl.Status() != motor.StatusCalibrating {
		t.Errorf("fresh controller status = %v, want calibrating", ctl.Status())
	}
}

func TestControllerRejectsUnknownNames(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"motor type", func(c *Config) { c.Motor.Type = "servo" }},
		{"phase pattern", func(c *Config) { c.Motor.PhasePattern = "abdc" }},
		{"probe layout", func(c *Config) { c.Control.Probes = "tri_ab" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStepperConfig()
			tc.mutate(cfg)
			if _, err := cfg.Controller(golog.NewTestLogger(t)); err == nil {
				t.Error("bad name accepted")
			}
		})
	}
}
