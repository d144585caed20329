//go:build freestanding || tinygo

package fatal

import "io"

// BacktraceDepth is the maximum number of frames printed in a backtrace.
const BacktraceDepth = 20

// printBacktrace is a no-op on targets without stack unwinding.
func printBacktrace(io.Writer, int) {}
