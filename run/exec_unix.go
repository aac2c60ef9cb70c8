//go:build !windows

package run

import (
	"os"
	"syscall"
)

// exitCodeFromState follows the POSIX reporting convention: termination by
// signal becomes the negated signal number, mirroring how callers expect
// to classify -9 and friends.
func exitCodeFromState(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return state.ExitCode()
}

// normalizeEnvKey is the identity on POSIX; environment names are
// case-sensitive here.
func normalizeEnvKey(key string) string { return key }
