// Package config loads the host simulator configuration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Serial SerialConfig `yaml:"serial"`
	EEPROM EEPROMConfig `yaml:"eeprom"`
	Motion MotionConfig `yaml:"motion"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Device        string `yaml:"device"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// ---- EEPROM ----

type EEPROMConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// ---- MOTION ----

type MotionConfig struct {
	PulseWidthUs  uint32 `yaml:"pulse_width_us"`
	FastRateUs    uint32 `yaml:"fast_rate_us"`
	DefaultRateUs uint32 `yaml:"default_rate_us"`
	QueueDepth    int    `yaml:"queue_depth"`
}

// Load reads, parses and normalizes the configuration at path.
// It does not validate; call Validate afterwards.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data and applies defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	Normalize(&cfg)
	return &cfg, nil
}
