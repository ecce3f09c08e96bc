// ABOUTME: Integer parsing for loosely typed inputs such as query parameters
// ABOUTME: Malformed values yield the caller's default instead of an error

package parse

import (
	"strconv"
	"strings"
)

// IntOrDefault parses s as a base-10 integer after trimming spaces.
// Empty or malformed input returns def.
func IntOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
