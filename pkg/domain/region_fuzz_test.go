//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseRegion tests that parsing never panics on arbitrary input and that
// acceptance matches the two-character invariant exactly.
func FuzzParseRegion(f *testing.F) {
	f.Add("")
	f.Add("DE")
	f.Add("DEU")
	f.Add("d")
	f.Add("  ")
	f.Add(string([]byte{0x00, 0x01}))
	f.Add("éé")

	f.Fuzz(func(t *testing.T, input string) {
		region, err := ParseRegion(input)

		if utf8.RuneCountInString(input) == 2 {
			if err != nil {
				t.Errorf("two-character input %q rejected: %v", input, err)
			}
			if region.String() != input {
				t.Errorf("region did not round-trip: %q != %q", region, input)
			}
		} else if err == nil {
			t.Errorf("non two-character input %q accepted as %q", input, region)
		}
	})
}
