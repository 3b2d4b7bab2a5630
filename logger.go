package pie3d

import (
	"log/slog"
	"sync/atomic"
)

// silent is returned by Logger until SetLogger installs a logger.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

// SetLogger sends the diagnostics of Render, the recording package and the
// pie3d command to l. Passing nil silences them again, which is also the
// initial state.
//
// Records:
//   - Debug "pie3d: plan": slice count, ellipse radii and center, scale and
//     the length of each wall list
//   - Debug "recording: flush": commands captured for a chart
//   - Debug "pie3d: wrote chart": format and size of the command's output
//   - Warn "pie3d: no slices" and "pie3d: zero total": Render drew nothing
//
// The pie3d command installs a text handler on stderr, at Debug with -v and
// Warn otherwise:
//
//	pie3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
//
// SetLogger may be called while charts render on other goroutines.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger, or one that discards
// every record.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
