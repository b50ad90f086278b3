package services

import "testing"

func TestColorForKeyDeterministic(t *testing.T) {
	for _, key := range []string{"Miraflores", "San Isidro", "Sin distrito", ""} {
		first := ColorForKey(key)
		for i := 0; i < 3; i++ {
			if got := ColorForKey(key); got != first {
				t.Fatalf("ColorForKey(%q) not stable: %q vs %q", key, first, got)
			}
		}

		found := false
		for _, c := range palette {
			if c == first {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ColorForKey(%q) = %q not in palette", key, first)
		}
	}
}
