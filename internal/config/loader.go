// internal/config/loader.go
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTuningYAML []byte

// Load reads tuning.
// Search order: customPath -> ~/.arena/config.yaml -> ./configs/arena.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "arena.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTuningYAML)
	if err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultTuning and validates the result.
func Parse(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTuning(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	if t.Map.Width < SafeZoneMin || t.Map.Height < SafeZoneMin {
		return fmt.Errorf("map %dx%d is smaller than the safe zone", t.Map.Width, t.Map.Height)
	}
	if t.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %v", t.Player.Speed)
	}
	if t.Player.HP <= 0 {
		return fmt.Errorf("player hp must be positive, got %v", t.Player.HP)
	}
	if t.Combat.AttackRate <= 0 {
		return fmt.Errorf("attack rate must be positive, got %v", t.Combat.AttackRate)
	}
	if t.Autoplay.DecisionInterval < 0 {
		return fmt.Errorf("autoplay decision interval must not be negative, got %v", t.Autoplay.DecisionInterval)
	}
	switch t.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", t.Log.Level)
	}
	return nil
}

// SafeZoneMin is the smallest map side that still fits the spawn safe-zone radius.
const SafeZoneMin = 3

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", filename)
}
