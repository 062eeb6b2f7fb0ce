package when

import "github.com/rs/zerolog"

// Logger is the ambient structured-logging concern a Factory uses for
// diagnostics that are not part of the promise's own error channel: the
// fatal-commit crash raised by Done's unhandled-rejection path, and
// debug-level notices about progress events dropped after settlement.
//
// Nothing in the core ever branches on a Logger call's outcome; logging a
// dropped event is not "acting on" it, so the silent-drop invariants in the
// data model still hold with or without a Logger attached.
type Logger interface {
	Log(event string, fields map[string]any)
}

type noopLogger struct{}

// NewNoOpLogger returns a Logger that discards every event.
func NewNoOpLogger() Logger { return noopLogger{} }

func (noopLogger) Log(string, map[string]any) {}

// zerologLogger adapts a zerolog.Logger to the Logger interface. This is the
// bundled default backend for NewGoroutineEnvironment.
type zerologLogger struct {
	z zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(z zerolog.Logger) Logger {
	return &zerologLogger{z: z}
}

func (l *zerologLogger) Log(event string, fields map[string]any) {
	e := l.z.Info()
	if event == "progress_after_settlement_dropped" {
		e = l.z.Debug()
	}
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(event)
}
