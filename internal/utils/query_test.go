package utils

import (
	"net/url"
	"testing"
)

func TestFirstValue(t *testing.T) {
	q := url.Values{
		"operator_id": {" 3 ", "5"},
	}

	if got := FirstValue(q, "operator_id"); got != "3" {
		t.Errorf("FirstValue = %q, want %q", got, "3")
	}
	if got := FirstValue(q, "missing"); got != "" {
		t.Errorf("FirstValue(missing) = %q, want empty", got)
	}
}

func TestIsUnsetFilter(t *testing.T) {
	for _, v := range []string{"", "  ", "all", "All", "todos", "TODAS"} {
		if !IsUnsetFilter(v) {
			t.Errorf("IsUnsetFilter(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"1", "0", "Miraflores", "allx"} {
		if IsUnsetFilter(v) {
			t.Errorf("IsUnsetFilter(%q) = true, want false", v)
		}
	}
}
