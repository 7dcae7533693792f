package config

import "time"

// Config holds all configuration for the detcalc harness
type Config struct {
	Env    string `mapstructure:"env"`
	Log    LogConfig
	Engine EngineConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

// EngineConfig holds determinant engine presentation settings
type EngineConfig struct {
	Pace  time.Duration `mapstructure:"pace"`  // pause between top-level columns
	Trace bool          `mapstructure:"trace"` // print the full derivation
}

// IsProduction reports whether the production logger should be used
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
