package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var outputMu sync.Mutex

// Logger writes human-readable status messages. Nil writers mean
// stdout for status lines and stderr for errors.
type Logger struct {
	Out io.Writer
	Err io.Writer
}

// Info prints an informational message.
func (l Logger) Info(msg string) {
	writeLog(l.out(), "[INFO]", msg)
}

// Warn prints a warning message.
func (l Logger) Warn(msg string) {
	writeLog(l.out(), "[WARN]", msg)
}

// Error prints an error message.
func (l Logger) Error(msg string) {
	writeLog(l.err(), "[ERROR]", msg)
}

// Failure prints a failed-conversion message.
func (l Logger) Failure(msg string) {
	writeLog(l.err(), "[FAIL]", msg)
}

func (l Logger) out() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

func (l Logger) err() io.Writer {
	if l.Err == nil {
		return os.Stderr
	}
	return l.Err
}

func writeLog(w io.Writer, level, msg string) {
	outputMu.Lock()
	defer outputMu.Unlock()
	fmt.Fprintln(w, level, msg)
}
