package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the application-level options the CLI reads at startup.
type Settings struct {
	Logging   LoggingSettings   `yaml:"logging"`
	Tolerance ToleranceSettings `yaml:"tolerance"`
}

// LoggingSettings configures the structured logger.
type LoggingSettings struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ToleranceSettings overrides the face grouping tolerances.
type ToleranceSettings struct {
	AngleDegrees float64 `yaml:"angle_degrees"`
	Distance     float64 `yaml:"distance"`
}

// DefaultSettings returns the built-in settings: info logging to stderr and
// the standard 1 degree / 0.5mm grouping tolerances.
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingSettings{
			Level: "info",
		},
		Tolerance: ToleranceSettings{
			AngleDegrees: 1.0,
			Distance:     0.5,
		},
	}
}

// LoadSettings merges a YAML settings file over the defaults. A missing
// path or missing file keeps the defaults.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSettings(), fmt.Errorf("loading settings from %s: %w", path, err)
	}
	return cfg, nil
}

// SaveSettings writes settings as YAML.
func SaveSettings(path string, cfg Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
