package main

import (
	"fmt"
	"io"

	"github.com/rpgo/rothcompare/internal/calculation"
	"github.com/spf13/cobra"
)

// stderrLogger prints calculation log lines with a level prefix.
type stderrLogger struct {
	w       io.Writer
	verbose bool
	debug   bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.printf("DEBUG", format, args...)
	}
}

func (l stderrLogger) Infof(format string, args ...any) {
	if l.verbose || l.debug {
		l.printf("INFO", format, args...)
	}
}

func (l stderrLogger) Warnf(format string, args ...any)  { l.printf("WARN", format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { l.printf("ERROR", format, args...) }

func (l stderrLogger) printf(level, format string, args ...any) {
	fmt.Fprintf(l.w, "%-5s %s\n", level, fmt.Sprintf(format, args...))
}

// loggerFromFlags builds the logger selected by --verbose and --debug.
func loggerFromFlags(cmd *cobra.Command) calculation.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")
	return stderrLogger{w: cmd.ErrOrStderr(), verbose: verbose, debug: debug}
}
