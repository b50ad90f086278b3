package utils

import (
	"net/url"
	"strings"
)

// FirstValue returns the trimmed first value for key, or "" if absent.
func FirstValue(q url.Values, key string) string {
	vals := q[key]
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// IsUnsetFilter reports whether a filter value means "no constraint".
// The web client sends "all"; older links send "todos"/"todas".
func IsUnsetFilter(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "todos", "todas":
		return true
	}
	return false
}
