package run

import "strings"

// JoinCommand renders argv as a single line for display, quoting tokens
// that need it using the host platform's convention. The result is
// cosmetic — it appears in descriptions and error messages — and is never
// re-parsed.
func JoinCommand(cmd []string) string {
	parts := make([]string, len(cmd))
	for i, arg := range cmd {
		parts[i] = quoteArg(arg)
	}
	return strings.Join(parts, " ")
}
