//go:build !windows

package exitstatus

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// signalName resolves a signal number to its symbolic name, or "" when the
// number is not a known signal on this system.
func signalName(num int) string {
	return unix.SignalName(syscall.Signal(num))
}
