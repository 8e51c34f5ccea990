package zodiac

// Logger is the sink the engine reports to. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// NopLogger discards everything.
func NopLogger() Logger { return nopLogger{} }
