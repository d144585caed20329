//go:build !freestanding

package fatal

import "strconv"

// describe writes the diagnostic line for a failure followed by a backtrace of the failing
// goroutine. Errors writing to the diagnostic stream are ignored as the process is about to
// terminate anyway.
func describe(k kind, message, file string, line int) {
	_, _ = stderr.Write(appendDiagnostic(make([]byte, 0, 128), k, message, file, line))
	// skip describe and fail
	printBacktrace(stderr, 2)
}

func appendDiagnostic(b []byte, k kind, message, file string, line int) []byte {
	b = append(b, file...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(line), 10)
	b = append(b, ": "...)
	b = append(b, k.String()...)
	if message != "" {
		b = append(b, ": "...)
		b = append(b, message...)
	}
	return append(b, '\n')
}
