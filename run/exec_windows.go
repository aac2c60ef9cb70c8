//go:build windows

package run

import (
	"os"
	"strings"
	"syscall"
)

// exitCodeFromState reinterprets the unsigned 32-bit exit code as signed,
// so NTSTATUS values come out negative as callers expect.
func exitCodeFromState(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		return int(int32(ws.ExitCode))
	}
	return state.ExitCode()
}

// normalizeEnvKey upper-cases names: the Windows environment is
// case-insensitive and overrides must not create case-variant duplicates.
func normalizeEnvKey(key string) string { return strings.ToUpper(key) }
