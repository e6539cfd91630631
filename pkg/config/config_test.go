package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwincroissant/simplehx711/pkg/hx711"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, BackendGPIOCdev, cfg.Device.Backend)
	assert.Equal(t, "gpiochip0", cfg.Device.Chip)
	assert.Equal(t, 128, cfg.Driver.Gain)
	assert.Equal(t, uint8(3), cfg.Driver.ReadsUntilValid)
	assert.Equal(t, uint8(200), cfg.Driver.Alpha)
	assert.Equal(t, 10*time.Millisecond, cfg.Driver.PollInterval)
	assert.Equal(t, int32(256), cfg.Scale.Adjuster)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
device:
  backend: ft232h
  index: 1
  clock_pin: 3
  data_pin: 4

driver:
  gain: 64
  reads_until_valid: 6
  alpha: 128
  poll_interval: 25ms

scale:
  tare: -1024
  adjuster: 2560
`
	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, BackendFT232H, cfg.Device.Backend)
	assert.Equal(t, 1, cfg.Device.Index)
	assert.Equal(t, uint(3), cfg.Device.ClockPin)
	assert.Equal(t, uint(4), cfg.Device.DataPin)
	assert.Equal(t, 64, cfg.Driver.Gain)
	assert.Equal(t, uint8(6), cfg.Driver.ReadsUntilValid)
	assert.Equal(t, uint8(128), cfg.Driver.Alpha)
	assert.Equal(t, 25*time.Millisecond, cfg.Driver.PollInterval)
	assert.Equal(t, int32(-1024), cfg.Scale.Tare)
	assert.Equal(t, int32(2560), cfg.Scale.Adjuster)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("device: [not: a: mapping")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"UnknownBackend", func(c *Config) { c.Device.Backend = "serial" }},
		{"SamePins", func(c *Config) { c.Device.DataPin = c.Device.ClockPin }},
		{"BadGain", func(c *Config) { c.Driver.Gain = 42 }},
		{"ZeroPollInterval", func(c *Config) { c.Driver.PollInterval = 0 }},
		{"ZeroAdjuster", func(c *Config) { c.Scale.Adjuster = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDriverConfig(t *testing.T) {
	cfg := Default()
	cfg.Driver.Gain = 32

	dc := cfg.DriverConfig()
	assert.Equal(t, hx711.Gain32, dc.Gain)
	assert.Equal(t, uint8(3), dc.ReadsUntilValid)
	assert.Equal(t, uint8(200), dc.Alpha)
}
