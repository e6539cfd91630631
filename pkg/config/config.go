// Package config loads the YAML configuration for the weigh tool.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edwincroissant/simplehx711/pkg/hx711"
)

// Backend names accepted in DeviceConfig.
const (
	BackendGPIOCdev = "gpiocdev"
	BackendFT232H   = "ft232h"
)

// Config represents the tool configuration.
type Config struct {
	Device DeviceConfig `yaml:"device"`
	Driver DriverConfig `yaml:"driver"`
	Scale  ScaleConfig  `yaml:"scale"`
}

// DeviceConfig selects the hardware backend and its pins.
type DeviceConfig struct {
	Backend  string `yaml:"backend"`   // "gpiocdev" or "ft232h"
	Chip     string `yaml:"chip"`      // gpiocdev: gpiochip name
	Index    int    `yaml:"index"`     // ft232h: device index
	ClockPin uint   `yaml:"clock_pin"` // PD_SCK
	DataPin  uint   `yaml:"data_pin"`  // DOUT
}

// DriverConfig contains the driver parameters.
type DriverConfig struct {
	Gain            int           `yaml:"gain"` // 128, 64 or 32
	ReadsUntilValid uint8         `yaml:"reads_until_valid"`
	Alpha           uint8         `yaml:"alpha"`
	PollInterval    time.Duration `yaml:"poll_interval"`
}

// ScaleConfig carries initial calibration values applied at startup.
// The driver itself never persists them.
type ScaleConfig struct {
	Tare     int32 `yaml:"tare"`
	Adjuster int32 `yaml:"adjuster"`
}

// Default returns the configuration matching the driver defaults: a
// gpiochip0 backend and the SimpleHX711 driver parameters.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			Backend:  BackendGPIOCdev,
			Chip:     "gpiochip0",
			ClockPin: 5,
			DataPin:  6,
		},
		Driver: DriverConfig{
			Gain:            128,
			ReadsUntilValid: 3,
			Alpha:           200,
			PollInterval:    10 * time.Millisecond,
		},
		Scale: ScaleConfig{
			Adjuster: 256,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	switch c.Device.Backend {
	case BackendGPIOCdev, BackendFT232H:
	default:
		return fmt.Errorf("unknown backend %q, want %q or %q",
			c.Device.Backend, BackendGPIOCdev, BackendFT232H)
	}
	if c.Device.ClockPin == c.Device.DataPin {
		return fmt.Errorf("clock and data pins must differ")
	}
	if _, err := hx711.GainFor(c.Driver.Gain); err != nil {
		return err
	}
	if c.Driver.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if c.Scale.Adjuster == 0 {
		return fmt.Errorf("adjuster must not be zero")
	}
	return nil
}

// DriverConfig converts the driver section into the hx711 package's
// Config. Validate must have accepted the gain first.
func (c *Config) DriverConfig() hx711.Config {
	gain, _ := hx711.GainFor(c.Driver.Gain)
	return hx711.Config{
		Gain:            gain,
		ReadsUntilValid: c.Driver.ReadsUntilValid,
		Alpha:           c.Driver.Alpha,
	}
}
