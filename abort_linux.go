//go:build !freestanding && linux

package fatal

import (
	"os"
	"runtime"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// abort terminates the process by SIGABRT with its default action, so the host sees a signal
// death and may write a core file. The Go runtime handles SIGABRT itself by printing every
// goroutine and exiting with status 2, so the disposition is reset to SIG_DFL first. abort exits
// with abortExitCode should the signal not end the process.
func abort() {
	runtime.LockOSThread()
	if resetSignal(unix.SIGABRT) == nil {
		_ = unix.Tgkill(unix.Getpid(), unix.Gettid(), unix.SIGABRT)
		time.Sleep(abortGrace)
	}
	os.Exit(abortExitCode)
}

// resetSignal sets the disposition of sig to SIG_DFL. The kernel's struct sigaction has
// SIG_DFL, no flags and an empty mask when zeroed, whatever the order of its fields on an
// architecture. act is larger than the struct on every architecture.
func resetSignal(sig syscall.Signal) error {
	var act [8]uint64
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION, uintptr(sig), uintptr(unsafe.Pointer(&act)), 0, sigsetSize(), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// sigsetSize is the size in bytes of the kernel's sigset_t.
func sigsetSize() uintptr {
	if strings.HasPrefix(runtime.GOARCH, "mips") {
		return 16
	}
	return 8
}
