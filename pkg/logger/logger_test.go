package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/weteam/classroom/internal/config"
)

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  appConfig.LoggerConfig
	}{
		{"production json", appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"}},
		{"development console", appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stderr"}},
		{"warn level", appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stdout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestNewWithConfig_LevelEnabled(t *testing.T) {
	log, err := NewWithConfig(appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stdout"})
	require.NoError(t, err)

	core := log.Desugar().Core()
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.WarnLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))
}

func TestNewWithConfig_UnknownValuesFallBack(t *testing.T) {
	log, err := NewWithConfig(appConfig.LoggerConfig{Level: "verbose", Format: "json", Output: "/var/log/app.log"})
	require.NoError(t, err)

	core := log.Desugar().Core()
	assert.True(t, core.Enabled(zapcore.InfoLevel))
	assert.False(t, core.Enabled(zapcore.DebugLevel))
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")

	log, err := New()
	require.NoError(t, err)

	core := log.Desugar().Core()
	assert.False(t, core.Enabled(zapcore.WarnLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))
}
