package domain

import (
	"unicode/utf8"

	dErrors "sigmahub/pkg/domain-errors"
)

// Region is a geographic area identified by a two-letter code, currently an
// ISO 3166-1 alpha-2 country code.
// Invariant: exactly two characters.
type Region string

// ParseRegion constructs a Region from external input.
//
// Errors: returns CodeInvalidInput when the code is not exactly two
// characters long.
func ParseRegion(s string) (Region, error) {
	if utf8.RuneCountInString(s) != 2 {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "region must be a 2-letter code, got %q", s)
	}
	return Region(s), nil
}

// String returns the region code.
func (r Region) String() string {
	return string(r)
}
