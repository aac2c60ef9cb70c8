// Package exitstatus maps raw process exit codes to human-readable
// qualifiers: termination-signal names on POSIX, NTSTATUS symbolic names or
// a hexadecimal form on Windows.
package exitstatus

import (
	"fmt"
	"math"
	"runtime"
)

// Platform selects which exit-code convention Describe applies.
type Platform int

const (
	// POSIX decodes negative exit codes as termination signals.
	POSIX Platform = iota
	// Windows resolves exit codes against the NTSTATUS table.
	Windows
)

// Native returns the Platform of the running operating system.
func Native() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// Describe returns a qualifier for code under the given platform's
// convention, or "" when the code needs none. It never fails: unknown
// codes degrade to "" on POSIX and to a zero-padded hexadecimal form on
// Windows, which is easier to search for than a large negative decimal.
func Describe(code int, platform Platform) string {
	if platform == Windows {
		return describeWindows(code)
	}
	return describePOSIX(code)
}

func describePOSIX(code int) string {
	if code >= 0 {
		return ""
	}
	if name := signalName(-code); name != "" {
		return name
	}
	return "unknown signal"
}

func describeWindows(code int) string {
	u, ok := thirtyTwoBits(code)
	if !ok {
		return ""
	}
	if name, ok := ntstatusNames[u]; ok && severity(u) != severitySuccess {
		return name
	}
	return fmt.Sprintf("0x%08X", u)
}

// thirtyTwoBits reinterprets a value that fits in either int32 or uint32
// as its unsigned 32-bit form.
func thirtyTwoBits(code int) (uint32, bool) {
	if code >= math.MinInt32 && code <= math.MaxInt32 {
		return uint32(int32(code)), true
	}
	if code >= 0 && code <= math.MaxUint32 {
		return uint32(code), true
	}
	return 0, false
}

const severitySuccess = 0

// severity extracts the NTSTATUS severity field, the top two bits.
func severity(u uint32) uint32 { return u >> 30 }
