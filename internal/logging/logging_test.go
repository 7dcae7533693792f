package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/laplace/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		enabled zap.AtomicLevel
		wantErr bool
	}{
		{"development debug", config.Config{Env: "development", Log: config.LogConfig{Level: "debug", Format: "console"}}, zap.NewAtomicLevelAt(zap.DebugLevel), false},
		{"production json", config.Config{Env: "production", Log: config.LogConfig{Level: "error", Format: "json"}}, zap.NewAtomicLevelAt(zap.ErrorLevel), false},
		{"bad level", config.Config{Env: "development", Log: config.LogConfig{Level: "loud", Format: "console"}}, zap.AtomicLevel{}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			logger, err := New(&tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.enabled.Level()))
			assert.False(t, logger.Core().Enabled(tc.enabled.Level()-1))
		})
	}
}
