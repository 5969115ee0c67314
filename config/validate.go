package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Serial.Device == "" {
		return fmt.Errorf("serial.device is required")
	}
	if cfg.Serial.Baud < 0 {
		return fmt.Errorf("serial.baud must be positive, got %d", cfg.Serial.Baud)
	}
	if cfg.Serial.ReadTimeoutMs < 0 {
		return fmt.Errorf("serial.read_timeout_ms must not be negative, got %d", cfg.Serial.ReadTimeoutMs)
	}

	// Boot counter and rate need the first two words
	if cfg.EEPROM.Size < 4 || cfg.EEPROM.Size%2 != 0 {
		return fmt.Errorf("eeprom.size must be even and at least 4, got %d", cfg.EEPROM.Size)
	}

	if err := cfg.Core().Validate(); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	return nil
}
