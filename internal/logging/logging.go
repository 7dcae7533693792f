// Package logging builds the zap logger used by the detcalc harness.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/internal/config"
)

// New returns a production logger when cfg.Env is "production" and a
// development logger otherwise, with the level and encoding taken from cfg.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	zc.Level = level
	zc.Encoding = cfg.Log.Format

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
