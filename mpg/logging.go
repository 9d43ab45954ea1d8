package mpg

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the diagnostic logging interface Build accepts through
// Options.Logger (SPEC_FULL.md §A); the chain emitter takes no logger. It is
// satisfied directly by *logrus.Logger and *logrus.Entry, so callers already using logrus elsewhere can pass their
// existing logger through unchanged.
type Logger = logrus.FieldLogger

// discardLogger is returned by withLogger when the caller passes nil,
// keeping construction's Debug-level tracing opt-in without requiring a
// nil check at every call site.
func discardLogger() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// withLogger normalizes a possibly-nil Logger to a usable one.
func withLogger(l Logger) Logger {
	if l == nil {
		return discardLogger()
	}
	return l
}
