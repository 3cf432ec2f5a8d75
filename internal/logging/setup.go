// Package logging builds the slog handlers shared by both workloads.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Supported handler formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	reportCaller := false
	var level slog.Level

	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	})
}

// SetupHandler picks the text or JSON handler by format name.
func SetupHandler(format, logLevel string, writer io.Writer) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return SetupHandlerText(logLevel, writer), nil
	case FormatJSON:
		return SetupHandlerJSON(logLevel, writer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SetupLogger configures the default logger and returns its handler
func SetupLogger(format, logLevel string) (slog.Handler, error) {
	handler, err := SetupHandler(format, logLevel, nil)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(handler))
	return handler, nil
}
