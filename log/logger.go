// Package log defines the leveled logger interface used across the driver.
package log

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Logger is the leveled, context-aware logging interface used throughout
// this module. A context.Context is threaded through every call so track
// IDs attached with WithTrackHostID/WithTrackRefreshID are always logged.
type Logger interface {
	Infof(context.Context, string, ...interface{})
	Warnf(context.Context, string, ...interface{})
	Errorf(context.Context, string, ...interface{})
	Debugf(context.Context, string, ...interface{})
}

var (
	trackHostIDKey    = "trackHostIDKey"
	trackRefreshIDKey = "trackRefreshIDKey"
)

// WithTrackHostID assigns a fresh trace ID and attaches it to the context.
//
// The control connection calls this once per connect attempt to a host, so
// every log line for that attempt (including retries after a protocol
// downgrade) can be correlated.
func WithTrackHostID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackHostIDKey, genTrackID())
}

// TrackHostID returns the trace ID attached to the context, if any.
func TrackHostID(ctx context.Context) string {
	v, ok := ctx.Value(&trackHostIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

// WithTrackRefreshID assigns a fresh trace ID for a single metadata refresh
// (topology, schema, or single-host) and attaches it to the context.
func WithTrackRefreshID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackRefreshIDKey, genTrackID())
}

// TrackRefreshID returns the refresh trace ID attached to the context, if any.
func TrackRefreshID(ctx context.Context) string {
	v, ok := ctx.Value(&trackRefreshIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

func genTrackID() string {
	return fmt.Sprintf("%04d-%04d-%04d", rand.Int31n(10000), rand.Int31n(10000), rand.Int31n(10000))
}
