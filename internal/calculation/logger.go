package calculation

import "fmt"

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// RecordingLogger keeps formatted warnings and errors in memory and forwards
// every call to Next.
type RecordingLogger struct {
	Next     Logger
	Warnings []string
	Errors   []string
}

func (r *RecordingLogger) next() Logger {
	if r.Next == nil {
		return NopLogger{}
	}
	return r.Next
}

func (r *RecordingLogger) Debugf(format string, args ...any) { r.next().Debugf(format, args...) }
func (r *RecordingLogger) Infof(format string, args ...any)  { r.next().Infof(format, args...) }

func (r *RecordingLogger) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	r.next().Warnf(format, args...)
}

func (r *RecordingLogger) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.next().Errorf(format, args...)
}
