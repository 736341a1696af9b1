package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel},
		{"upper case", "WARN", zapcore.WarnLevel},
		{"padded", " info ", zapcore.InfoLevel},
		{"empty", "", zapcore.ErrorLevel},
		{"unknown", "chatty", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestZapLogger_GetLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l := NewZapLogger(path, "error", false)

	l.Info("Test", "first", nil)
	l.Warn("Test", "second", map[string]interface{}{"provider": "google"})
	l.With(map[string]interface{}{"invocation_id": "abc"}).Info("Test", "third", nil)
	l.Debug("Test", "dropped below file level", nil)
	_ = l.Sync()

	entries, err := l.GetLogs("", 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "abc", entries[0].InvocationId)
	assert.Equal(t, "first", entries[2].Message)

	warns, err := l.GetLogs("warn", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "Test", warns[0].Module)
	assert.Equal(t, "google", warns[0].Details["provider"])

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	empty, err := l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestZapLogger_GetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{logger: NewNopLogger().logger, filePath: filepath.Join(t.TempDir(), "absent.log")}

	entries, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
