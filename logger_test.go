package paint

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs installs a debug logger writing to a buffer for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	ctx := context.Background()
	if Logger().Enabled(ctx, slog.LevelError) {
		t.Error("default logger is enabled at error level")
	}
}

func TestLoggerRecordsLifecycle(t *testing.T) {
	buf := captureLogs(t)

	g, err := NewRadialGradient(0, 0, 1, 0, 0, 4)
	if err != nil {
		t.Fatalf("NewRadialGradient: %v", err)
	}
	g.Release()

	out := buf.String()
	for _, want := range []string{"pattern created", "pattern finalized", "type=radial"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerQuietOnErrors(t *testing.T) {
	buf := captureLogs(t)

	p, _ := NewSolidRGB(0, 0, 0)
	defer p.Release()
	_ = p.SetMatrix(Scale(0, 0))

	if strings.Contains(buf.String(), "level=ERROR") || strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("error path logged above debug:\n%s", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should install a disabled logger")
	}
}
