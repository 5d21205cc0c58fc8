package core

// Logger is the logging hook threaded through the renderer, loaders and server
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. Used when a caller passes a nil Logger.
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

// LoggerOrNop returns logger, or a NopLogger when logger is nil
func LoggerOrNop(logger Logger) Logger {
	if logger == nil {
		return NopLogger{}
	}
	return logger
}
