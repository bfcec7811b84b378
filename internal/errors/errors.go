// Package errors reports errors that end the process.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/simpleclock/internal/logger"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Format renders err for the terminal, or "" for nil.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// Fatal writes err to stderr and the log file, then exits with status 1.
// A nil err is ignored.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("simpleclock exited with an error", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exit(1)
}

// Fatalf is Fatal for an error built with fmt.Errorf, so %w keeps the cause
// in the log.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
