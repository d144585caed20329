// Package assert provides formatted runtime assertion checking for invariants.
//
// A failed assertion reports the location of the call and terminates the process using package
// [fatal]. Messages are only formatted once an assertion fails.
package assert

import (
	"fmt"

	"github.com/teleivo/fatal"
	"github.com/teleivo/fatal/internal/callsite"
)

// That terminates with a precondition failure if condition is false.
func That(condition bool, msg string, args ...any) {
	if condition {
		return
	}

	file, line := callsite.Caller(1)
	fatal.PreconditionAt(false, format(msg, args), file, line)
}

// Fail terminates with a fatal error.
func Fail(msg string, args ...any) {
	file, line := callsite.Caller(1)
	fatal.ErrorAt(format(msg, args), file, line)
}

// NoError terminates with a fatal error carrying the message of err if err is not nil.
func NoError(err error) {
	if err == nil {
		return
	}

	file, line := callsite.Caller(1)
	fatal.ErrorAt(err.Error(), file, line)
}

func format(msg string, args []any) string {
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
