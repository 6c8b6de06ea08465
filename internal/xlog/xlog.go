// Package xlog is the small, verbose-gated logger triangulate and
// kirkpatrick use for build-time tracing ("... is an ear", "... is a
// pocket", and similar), written to stderr only when a caller opts in.
//
// An options struct with a Verbose bool gating plain standard-library
// log output is enough here; a full structured-logging or tracing
// dependency would be the wrong tool for a single-shot build-time trace.
package xlog

import (
	"io"
	"log"
	"os"
)

// Logger is a leveled logger with exactly one level: debug, gated by
// whether it was constructed verbose. A non-verbose Logger discards
// everything written to it at zero cost beyond the discard write.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger that writes to os.Stderr when verbose is true,
// and discards all output otherwise.
func New(verbose bool) *Logger {
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	return &Logger{l: log.New(w, "", 0), verbose: verbose}
}

// Verbose reports whether this Logger was constructed to actually emit.
func (lg *Logger) Verbose() bool { return lg.verbose }

// Debugf logs a formatted trace line. Arguments are still formatted even
// when the Logger is non-verbose, since the result is simply discarded —
// callers on a hot path (the ear-clipping inner loop) should guard with
// Verbose() first if formatting cost matters.
func (lg *Logger) Debugf(format string, args ...any) {
	lg.l.Printf(format, args...)
}
