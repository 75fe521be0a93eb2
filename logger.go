package paint

import (
	"log/slog"

	"github.com/gogpu/paint/internal/native"
)

// SetLogger configures the logger for paint and the object layer beneath it.
// By default, paint produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by paint:
//   - [slog.LevelDebug]: object lifecycle (pattern and surface creation
//     and finalization)
//
// Errors are returned, never logged.
//
// Example:
//
//	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	native.SetLogger(l)
}

// Logger returns the current logger used by paint.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return native.Logger()
}
