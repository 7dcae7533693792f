package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable (DETCALC_PACE, ...).
const EnvPrefix = "DETCALC"

// Load loads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
// An empty path searches for detcalc.yaml in the working directory and
// $HOME/.config/detcalc; a missing file is not an error in that case.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("detcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/detcalc")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	cfg.Env = v.GetString("env")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	// Engine
	cfg.Engine.Pace = v.GetDuration("pace")
	cfg.Engine.Trace = v.GetBool("trace")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	// Logging defaults
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")

	// Engine defaults
	v.SetDefault("pace", "0s")
	v.SetDefault("trace", false)
}

// Validate checks values that Load cannot repair.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Engine.Pace < 0 {
		errs = append(errs, "pace must be >= 0")
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("log_format must be console or json, got %q", cfg.Log.Format))
	}
	switch cfg.Env {
	case "development", "production":
	default:
		errs = append(errs, fmt.Sprintf("env must be development or production, got %q", cfg.Env))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
