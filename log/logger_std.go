package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type stdLogger struct {
	l *log.Logger
}

func (l *stdLogger) Infof(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "INFO", format, args...)
}

func (l *stdLogger) Warnf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "WARN", format, args...)
}

func (l *stdLogger) Errorf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "ERROR", format, args...)
}

func (l *stdLogger) Debugf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, "DEBUG", format, args...)
}

func outputLogf(ctx context.Context, l *log.Logger, prefix, format string, args ...any) {
	b := strings.Builder{}
	if hID := TrackHostID(ctx); hID != "" {
		b.WriteString("track-host-id:" + hID + "\t")
	}
	if rID := TrackRefreshID(ctx); rID != "" {
		b.WriteString("track-refresh-id:" + rID + "\t")
	}
	b.WriteString(format)
	l.Output(3, fmt.Sprintf("%s: %s", prefix, fmt.Sprintf(b.String(), args...)))
}

// NewStd returns a Logger backed by the standard library's default logger.
func NewStd() Logger {
	return &stdLogger{
		l: log.Default(),
	}
}

// NewStdWith returns a Logger backed by the given standard library logger.
func NewStdWith(l *log.Logger) Logger {
	return &stdLogger{
		l: l,
	}
}
