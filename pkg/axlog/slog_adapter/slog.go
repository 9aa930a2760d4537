package slogadapter

import (
	"io"
	"log/slog"

	"github.com/QYUbit/sarsim/pkg/axlog"
)

type Adapter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// NewText returns an adapter writing slog text records at or above level to w.
func NewText(w io.Writer, level slog.Level) *Adapter {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return New(slog.New(h))
}

func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.logger.Info(msg, keysAndValues...)
}

func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.logger.Error(msg, keysAndValues...)
}

func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.logger.Warn(msg, keysAndValues...)
}

func (a *Adapter) With(keysAndValues ...any) axlog.Logger {
	return &Adapter{logger: a.logger.With(keysAndValues...)}
}
