package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf
	require.NoError(t, app.Run(context.Background(), append([]string{"interval-responder"}, args...)))
	return buf.String()
}

func TestConfigCommand(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		out := runApp(t, "--port", "9191", "--receive-paths", "/a, /b", "config")
		assert.Contains(t, out, "9191")
		assert.Contains(t, out, "/a")
		assert.Contains(t, out, "/b")
		assert.Contains(t, out, "/error")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PORT", "7272")
		t.Setenv("RECEIVE_PATHS", "/from-env")
		out := runApp(t, "config")
		assert.Contains(t, out, "7272")
		assert.Contains(t, out, "/from-env")
	})

	t.Run("invalid port falls back", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		out := runApp(t, "config")
		assert.Contains(t, out, "8080 (default)")
	})
}

func TestVersionCommand(t *testing.T) {
	out := runApp(t, "version")
	assert.Contains(t, out, "interval-responder version dev")
}
