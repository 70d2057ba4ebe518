package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const DefaultScenarioPattern = "scenarios/**/*.{star,yaml,yml}"

// Settings holds the command line configuration, merged by viper from flags,
// ITEMSORT_* environment variables and an optional itemsort.yaml.
type Settings struct {
	Scenarios string `mapstructure:"scenarios"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	TUI       bool   `mapstructure:"tui"`
	Output    string `mapstructure:"output"`
}

// SetDefaults registers the default value of every settings key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scenarios", DefaultScenarioPattern)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("tui", false)
	v.SetDefault("output", "")
}

// LoadSettings decodes and validates the settings held by v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}

	if settings.Scenarios == "" {
		return nil, errors.New("scenarios pattern cannot be empty")
	}

	switch settings.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.Errorf("invalid log level %q", settings.LogLevel)
	}

	switch settings.LogFormat {
	case "text", "json":
	default:
		return nil, errors.Errorf("invalid log format %q", settings.LogFormat)
	}

	return &settings, nil
}
