package softvg

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestDefaultLoggerSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled; want silent")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("message")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore silence")
	}
}

func TestDrawingLogsDebug(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := newTestContext(t)
	bindRGBA(t, c, 4, 4)
	c.SetFillColor(White)
	c.BeginPath()
	c.Rect(0, 0, 4, 4)
	c.Fill()

	if !bytes.Contains(buf.Bytes(), []byte("rasterized path")) {
		t.Errorf("expected rasterize debug log, got: %s", buf.String())
	}
}
