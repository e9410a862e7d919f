package logging

import (
	"context"
	"log/slog"
)

// SlogLogger is the default terminal logger.
type SlogLogger struct {
	inner *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{inner: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.inner.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.inner.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.inner.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.inner.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{inner: s.inner.With(args...)}
}
