//go:build !freestanding && (!unix || hurd)

package fatal

import "os"

// abort exits with abortExitCode.
func abort() {
	os.Exit(abortExitCode)
}
