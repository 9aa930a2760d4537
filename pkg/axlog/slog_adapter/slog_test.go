package slogadapter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/QYUbit/sarsim/pkg/axlog"
	"github.com/stretchr/testify/assert"
)

var _ axlog.Logger = (*Adapter)(nil)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("evaluated", "op", "angle")
	l.Warn("careful")
	l.Error("failed", "error", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=evaluated op=angle")
	assert.Contains(t, out, "level=WARN msg=careful")
	assert.Contains(t, out, "level=ERROR msg=failed error=boom")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelDebug).With("cmd", "distance")

	l.Debug("parsed", "args", 2)

	assert.Contains(t, buf.String(), "level=DEBUG msg=parsed cmd=distance args=2")
}
