package log

import (
	"fmt"
	"io"
	"os"
)

// Logger prints human readable progress for beerctl commands.
type Logger interface {
	Actionf(format string, a ...interface{})
	Waitingf(format string, a ...interface{})
	Successf(format string, a ...interface{})
	Warningf(format string, a ...interface{})
	Failuref(format string, a ...interface{})
}

// StderrLogger writes prefixed lines to Stderr, or os.Stderr when unset.
type StderrLogger struct {
	Stderr io.Writer
	// Quiet drops everything except warnings and failures.
	Quiet bool
}

var _ Logger = StderrLogger{}

func (l StderrLogger) Actionf(format string, a ...interface{}) {
	if l.Quiet {
		return
	}
	l.println(`►`, format, a...)
}

func (l StderrLogger) Waitingf(format string, a ...interface{}) {
	if l.Quiet {
		return
	}
	l.println(`◎`, format, a...)
}

func (l StderrLogger) Successf(format string, a ...interface{}) {
	if l.Quiet {
		return
	}
	l.println(`✔`, format, a...)
}

func (l StderrLogger) Warningf(format string, a ...interface{}) {
	l.println(`⚠️`, format, a...)
}

func (l StderrLogger) Failuref(format string, a ...interface{}) {
	l.println(`✗`, format, a...)
}

func (l StderrLogger) println(prefix, format string, a ...interface{}) {
	w := l.Stderr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, prefix, fmt.Sprintf(format, a...))
}
