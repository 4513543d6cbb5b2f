package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withDefaultLogger(t *testing.T) {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
}

func TestInitDefaultLevelWarn(t *testing.T) {
	withDefaultLogger(t)
	var buf bytes.Buffer

	Init(&buf, false)
	slog.Info("info")
	slog.Warn("warn")

	assert.NotContains(t, buf.String(), "msg=info")
	assert.Contains(t, buf.String(), "msg=warn")
}

func TestInitDebugLevel(t *testing.T) {
	withDefaultLogger(t)
	var buf bytes.Buffer

	Init(&buf, true)
	slog.Debug("debug", "path", "src/app.ts")

	assert.Contains(t, buf.String(), "msg=debug")
	assert.Contains(t, buf.String(), "path=src/app.ts")
}
