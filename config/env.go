package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DebugConfig holds runtime switches read from the environment.
type DebugConfig struct {
	Enabled    bool   `env:"DUALITY_DEBUG"`
	SkipMenu   bool   `env:"DUALITY_SKIP_MENU"`
	StartLevel string `env:"DUALITY_START_LEVEL" envDefault:"level1"`
	TuningPath string `env:"DUALITY_TUNING"`
}

// Debug is the global debug configuration
var Debug DebugConfig

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
