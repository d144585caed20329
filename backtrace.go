//go:build !freestanding && !tinygo

package fatal

import (
	"io"
	"runtime"
	"strconv"
)

// BacktraceDepth is the maximum number of frames printed in a backtrace.
const BacktraceDepth = 20

// printBacktrace writes the header "Backtrace:" followed by one line per frame of the calling
// goroutine to w. skip is the number of frames to skip above the caller of printBacktrace.
//
// The program counters are captured into a fixed size array on the stack. Symbolizing and writing
// the frames may still allocate.
func printBacktrace(w io.Writer, skip int) {
	var pcs [BacktraceDepth]uintptr
	// skip runtime.Callers and printBacktrace
	n := runtime.Callers(skip+2, pcs[:])

	_, _ = io.WriteString(w, "Backtrace:\n")
	if n == 0 {
		return
	}

	// inlined calls expand to more frames than captured program counters
	frames := runtime.CallersFrames(pcs[:n])
	line := make([]byte, 0, 256)
	for i := 0; i < BacktraceDepth; i++ {
		frame, more := frames.Next()
		line = appendFrame(line[:0], i, frame)
		_, _ = w.Write(line)
		if !more {
			break
		}
	}
}

// appendFrame appends a frame as
//
//	#<index> 0x<pc> <function> <file>:<line>
func appendFrame(b []byte, index int, frame runtime.Frame) []byte {
	b = append(b, '#')
	b = strconv.AppendInt(b, int64(index), 10)
	b = append(b, " 0x"...)
	b = strconv.AppendUint(b, uint64(frame.PC), 16)
	b = append(b, ' ')
	if frame.Function != "" {
		b = append(b, frame.Function...)
	} else {
		b = append(b, "???"...)
	}
	if frame.File != "" {
		b = append(b, ' ')
		b = append(b, frame.File...)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(frame.Line), 10)
	}
	return append(b, '\n')
}
