package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"eqplatform/core"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("serial:\n  device: /dev/ttyUSB0\n"))
	require.NoError(t, err)

	require.Equal(t, "/dev/ttyUSB0", cfg.Serial.Device)
	require.Equal(t, 57600, cfg.Serial.Baud)
	require.Equal(t, 100, cfg.Serial.ReadTimeoutMs)
	require.Equal(t, "eeprom.bin", cfg.EEPROM.Path)
	require.Equal(t, 1024, cfg.EEPROM.Size)
	require.Equal(t, core.DefaultConfig(), cfg.Core())
	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eqsim.yaml")
	data := `
serial:
  device: /dev/pts/3
  baud: 115200
eeprom:
  path: /tmp/platform.eeprom
  size: 512
motion:
  pulse_width_us: 10
  fast_rate_us: 100
  default_rate_us: 2000
  queue_depth: 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	require.Equal(t, 115200, cfg.SerialPort().Baud)
	require.Equal(t, "/dev/pts/3", cfg.SerialPort().Device)
	require.Equal(t, "/tmp/platform.eeprom", cfg.EEPROM.Path)
	require.Equal(t, 512, cfg.EEPROM.Size)
	require.Equal(t, core.Config{PulseWidth: 10, FastRate: 100, DefaultRate: 2000, QueueDepth: 4}, cfg.Core())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("serial: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no device", func(c *Config) { c.Serial.Device = "" }},
		{"negative timeout", func(c *Config) { c.Serial.ReadTimeoutMs = -1 }},
		{"tiny eeprom", func(c *Config) { c.EEPROM.Size = 2 }},
		{"odd eeprom", func(c *Config) { c.EEPROM.Size = 1023 }},
		{"fast rate below pulse width", func(c *Config) { c.Motion.FastRateUs = 20 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte("serial:\n  device: /dev/ttyUSB0\n"))
			require.NoError(t, err)
			tt.modify(cfg)
			require.Error(t, Validate(cfg))
		})
	}
}
