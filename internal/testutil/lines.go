package testutil

import "strings"

// Lines joins lines with "\n" and appends a trailing newline, matching the
// output of line-oriented writers.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
