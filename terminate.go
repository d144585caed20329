//go:build !freestanding

package fatal

import "time"

const (
	// abortExitCode is the exit status of a shell reporting a process killed by SIGABRT. Platforms
	// that cannot raise SIGABRT with its default action exit with it directly.
	abortExitCode = 134
	// abortGrace is how long abort waits for SIGABRT to terminate the process before exiting.
	abortGrace = time.Second
)

// terminate ends the process. It is replaced by tests.
var terminate = abort
