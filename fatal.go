// Package fatal terminates a program after it detects a violated invariant.
//
// [Error] and [Precondition] report the failure and end the process. Neither returns once it
// fails: in hosted builds a diagnostic line and a backtrace are written to standard error and the
// process aborts, in freestanding builds (built with the freestanding tag) nothing is written and
// the processor halts via the primitive registered with SetHalt.
//
// Diagnostics have the form
//
//	<file>:<line>: <kind>[: <message>]
package fatal

import "github.com/teleivo/fatal/internal/callsite"

// kind is the kind of failure reported.
type kind int

const (
	kindFatalError kind = iota
	kindPreconditionFailure
)

func (k kind) String() string {
	switch k {
	case kindFatalError:
		return "fatal error"
	case kindPreconditionFailure:
		return "precondition failure"
	}
	return "unknown failure"
}

// Error reports a fatal error at the location of its caller and terminates the process. It never
// returns.
func Error(message string) {
	file, line := callsite.Caller(1)
	fail(kindFatalError, message, file, line)
}

// ErrorAt reports a fatal error at file:line and terminates the process. It never returns.
func ErrorAt(message, file string, line int) {
	fail(kindFatalError, message, file, line)
}

// Precondition returns if condition holds. Otherwise it reports a precondition failure at the
// location of its caller and terminates the process.
func Precondition(condition bool, message string) {
	if condition {
		return
	}
	file, line := callsite.Caller(1)
	fail(kindPreconditionFailure, message, file, line)
}

// PreconditionAt returns if condition holds. Otherwise it reports a precondition failure at
// file:line and terminates the process.
func PreconditionAt(condition bool, message, file string, line int) {
	if condition {
		return
	}
	fail(kindPreconditionFailure, message, file, line)
}

func fail(k kind, message, file string, line int) {
	describe(k, message, file, line)
	terminate()
}
