package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	logFilePath := filepath.Join(tempDir, "monitor-service.log")
	t.Run("successful creation", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("missing parent directory is created", func(t *testing.T) {
		nested := filepath.Join(tempDir, "log", "monitor-service.log")
		ws, err := NewReopenableWriteSyncer(nested)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(nested)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()

	logFilePath := filepath.Join(tempDir, "monitor-service.log")
	rotatedLogFilePath := filepath.Join(tempDir, "monitor-service.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("before rotate\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("after rotate\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	contentOld, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "before rotate\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "after rotate\n", string(contentNew))
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(os.DevNull)
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
		disabledLevel *zapcore.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zap.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zap.InfoLevel, disabledLevel: levelPtr(zap.DebugLevel)},
		{name: "warn level", logLevel: "warn", expectedLevel: zap.WarnLevel, disabledLevel: levelPtr(zap.InfoLevel)},
		{name: "error level", logLevel: "error", expectedLevel: zap.ErrorLevel, disabledLevel: levelPtr(zap.WarnLevel)},
		{name: "fatal level", logLevel: "fatal", expectedLevel: zap.FatalLevel, disabledLevel: levelPtr(zap.ErrorLevel)},
		{name: "invalid level", logLevel: "invalid", expectedLevel: zap.InfoLevel, disabledLevel: levelPtr(zap.DebugLevel)},
		{name: "empty level", logLevel: "", expectedLevel: zap.InfoLevel, disabledLevel: levelPtr(zap.DebugLevel)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, ws)
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
			if tc.disabledLevel != nil {
				assert.False(t, logger.Core().Enabled(*tc.disabledLevel), "level %s should be disabled", *tc.disabledLevel)
			}
		})
	}
}

func TestCronLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewCronLogger(zap.New(core))

	l.Info("wake", "now", "2026-01-01T00:00:00Z")
	l.Error(errors.New("boom"), "panic", "job", "monitor-1")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "wake", entries[0].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, "cron", entries[1].ContextMap()["component"])
}

func levelPtr(l zapcore.Level) *zapcore.Level {
	return &l
}
