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
	require.NoError(t, app.Run(context.Background(), append([]string{"interval-sender"}, args...)))
	return buf.String()
}

func TestConfigCommand(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, env := range []string{"HOST", "REQUEST_PATH", "METHOD", "HEADERS"} {
			t.Setenv(env, "")
		}
		out := runApp(t, "config")
		assert.Contains(t, out, "http://localhost:8080/echo")
		assert.Contains(t, out, "GET")
		assert.Contains(t, out, "(0)")
	})

	t.Run("flags", func(t *testing.T) {
		out := runApp(t,
			"--host", "http://responder:9000",
			"--request-path", "/custom",
			"--method", "POST",
			"--headers", "X-Test:abc, Y-Test:def",
			"config",
		)
		assert.Contains(t, out, "http://responder:9000/custom")
		assert.Contains(t, out, "POST")
		assert.Contains(t, out, "X-Test")
		assert.Contains(t, out, "def")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HOST", "http://from-env:1234")
		t.Setenv("REQUEST_PATH", "/env")
		t.Setenv("METHOD", "DELETE")
		t.Setenv("HEADERS", "X-Env:yes")
		out := runApp(t, "config")
		assert.Contains(t, out, "http://from-env:1234/env")
		assert.Contains(t, out, "DELETE")
		assert.Contains(t, out, "X-Env")
	})
}

func TestVersionCommand(t *testing.T) {
	out := runApp(t, "version")
	assert.Contains(t, out, "interval-sender version dev")
}
