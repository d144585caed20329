//go:build !freestanding && unix && !linux && !hurd

package fatal

import "os"

// abort exits with abortExitCode. x/sys/unix offers no sigaction outside of Linux to reset the
// Go runtime's SIGABRT handler, and raising it with the handler in place prints a runtime
// traceback and exits with status 2.
func abort() {
	os.Exit(abortExitCode)
}
