package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSlogLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Info(context.Background(), "fetching collection", "resource", "posts")

	out := buf.String()
	require.Contains(t, out, "fetching collection")
	require.Contains(t, out, "resource=posts")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := l.With("screen", "users")
	child.Warn(context.Background(), "fetch failed")

	require.Contains(t, buf.String(), "screen=users")
}

func TestZapLogger_WritesKeyValues(t *testing.T) {
	var buf zaptest
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	l := NewZapLogger(zap.New(core))

	l.Error(context.Background(), "delete failed", "id", "abc123")
	l.Debug(context.Background(), "request sent")

	out := buf.String()
	require.Contains(t, out, "delete failed")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, "request sent")
}

// zaptest is a minimal WriteSyncer over a strings.Builder.
type zaptest struct {
	sb strings.Builder
}

func (z *zaptest) Write(p []byte) (int, error) { return z.sb.Write(p) }
func (z *zaptest) Sync() error                 { return nil }
func (z *zaptest) String() string              { return z.sb.String() }
