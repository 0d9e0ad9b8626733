package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewConfig_JSON(t *testing.T) {
	config := newConfig(zapcore.WarnLevel, "json")
	assert.Equal(t, "json", config.Encoding)
	assert.Equal(t, "timestamp", config.EncoderConfig.TimeKey)
	assert.Equal(t, zapcore.WarnLevel, config.Level.Level())
	assert.Equal(t, []string{"stderr"}, config.OutputPaths)
}

func TestNewConfig_Console(t *testing.T) {
	config := newConfig(zapcore.DebugLevel, "console")
	assert.Equal(t, "console", config.Encoding)
	assert.Equal(t, zapcore.DebugLevel, config.Level.Level())
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug", "json", "wisefido-sepsis")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger("error", "console", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
}
