//go:build !freestanding && unix && !hurd

package fatal

import (
	"io"

	"golang.org/x/sys/unix"
)

// stderr is the diagnostic stream failures are reported to.
var stderr io.Writer = fdWriter(unix.Stderr)

// fdWriter writes straight to a file descriptor bypassing os.File and the runtime poller.
type fdWriter int

func (fd fdWriter) Write(p []byte) (int, error) {
	return writeAll(p, func(b []byte) (int, error) {
		return unix.Write(int(fd), b)
	})
}

// writeAll calls write until p is written, retrying on EINTR. It gives up on any other error and
// on a write making no progress, as blocking on the diagnostic stream would keep the process from
// terminating.
func writeAll(p []byte, write func([]byte) (int, error)) (int, error) {
	var n int
	for n < len(p) {
		m, err := write(p[n:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, err
		}
		if m <= 0 {
			return n, io.ErrShortWrite
		}
		n += m
	}
	return n, nil
}
