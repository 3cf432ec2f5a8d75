package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		logFn    func(*slog.Logger)
		wantOut  bool
	}{
		{
			name:     "debug level shows debug",
			logLevel: "debug",
			logFn:    func(l *slog.Logger) { l.Debug("test message", "key", "value") },
			wantOut:  true,
		},
		{
			name:     "info level hides debug",
			logLevel: "info",
			logFn:    func(l *slog.Logger) { l.Debug("test message", "key", "value") },
			wantOut:  false,
		},
		{
			name:     "uppercase warning level",
			logLevel: "WARNING",
			logFn:    func(l *slog.Logger) { l.Warn("test message", "key", "value") },
			wantOut:  true,
		},
		{
			name:     "unknown level falls back to info",
			logLevel: "chatty",
			logFn:    func(l *slog.Logger) { l.Info("test message", "key", "value") },
			wantOut:  true,
		},
		{
			name:     "error level hides warn",
			logLevel: "error",
			logFn:    func(l *slog.Logger) { l.Warn("test message", "key", "value") },
			wantOut:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.NotNil(t, handler)

			tt.logFn(slog.New(handler))

			if !tt.wantOut {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), "test message")
			assert.Contains(t, buf.String(), "key")
			assert.Contains(t, buf.String(), "value")
		})
	}
}

func TestSetupHandlerJSON(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel string
		wantSrc   bool
	}{
		{name: "trace adds source", logLevel: "trace", wantLevel: `"level":"INFO"`, wantSrc: true},
		{name: "info", logLevel: "info", wantLevel: `"level":"INFO"`},
		{name: "empty defaults to info", logLevel: "", wantLevel: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(SetupHandlerJSON(tt.logLevel, buf))
			logger.Info("test message", "key", "value")

			output := buf.String()
			assert.Contains(t, output, `"msg":"test message"`)
			assert.Contains(t, output, `"key":"value"`)
			assert.Contains(t, output, tt.wantLevel)
			if tt.wantSrc {
				assert.Contains(t, output, `"source"`)
			}
		})
	}
}

func TestSetupHandlerJSON_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("warn", buf))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSetupHandler(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		h, err := SetupHandler("text", "info", &bytes.Buffer{})
		require.NoError(t, err)
		assert.IsType(t, &log.Logger{}, h)
	})

	t.Run("empty format is text", func(t *testing.T) {
		h, err := SetupHandler("", "info", &bytes.Buffer{})
		require.NoError(t, err)
		assert.IsType(t, &log.Logger{}, h)
	})

	t.Run("json", func(t *testing.T) {
		h, err := SetupHandler("JSON", "info", &bytes.Buffer{})
		require.NoError(t, err)
		assert.IsType(t, &slog.JSONHandler{}, h)
	})

	t.Run("unknown format", func(t *testing.T) {
		h, err := SetupHandler("xml", "info", &bytes.Buffer{})
		require.ErrorIs(t, err, ErrUnknownFormat)
		assert.Nil(t, h)
	})
}

func TestSetupLogger(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	handler, err := SetupLogger("json", "debug")
	require.NoError(t, err)
	assert.Same(t, handler, slog.Default().Handler())

	_, err = SetupLogger("yaml", "debug")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
