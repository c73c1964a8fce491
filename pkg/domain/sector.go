package domain

import (
	"strings"

	dErrors "sigmahub/pkg/domain-errors"
)

// Sector is an economic sector descriptor. May reference a NACE code in the
// future; for now any non-blank name is accepted.
type Sector string

// ParseSector constructs a Sector from external input.
//
// Errors: returns CodeInvalidInput when the name is blank.
func ParseSector(s string) (Sector, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "sector name cannot be blank")
	}
	return Sector(s), nil
}

// String returns the sector name.
func (s Sector) String() string {
	return string(s)
}
