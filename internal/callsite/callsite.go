// Package callsite captures the source location of a call.
package callsite

import "runtime"

// Caller returns the file and line of the function skip frames above the caller of Caller. An
// unknown location is reported as "???" and line 0.
func Caller(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return file, line
}
