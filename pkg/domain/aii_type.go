package domain

import (
	dErrors "sigmahub/pkg/domain-errors"
)

// AiiType identifies an adverse impact indicator category.
// Invariant: the value must be one of the supported indicator types.
//
// Usage: construct via ParseAiiType at trust boundaries to enforce the
// closed set; direct casting bypasses validation.
type AiiType string

// Supported indicator types. The set is closed: adding a type here does not
// make it computable until a strategy for it is registered with the router.
const (
	AiiTypePM25       AiiType = "PM25"
	AiiTypeHeatStress AiiType = "HEAT_STRESS"
)

// aiiTypes fixes the enumeration order for callers that iterate the set.
var aiiTypes = []AiiType{
	AiiTypePM25,
	AiiTypeHeatStress,
}

// validAiiTypes is the single source of truth for valid indicator types.
var validAiiTypes = map[AiiType]bool{
	AiiTypePM25:       true,
	AiiTypeHeatStress: true,
}

// AiiTypes returns the supported indicator types in a stable order.
func AiiTypes() []AiiType {
	out := make([]AiiType, len(aiiTypes))
	copy(out, aiiTypes)
	return out
}

// ParseAiiType constructs an AiiType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not in the
// supported set; no other errors are expected.
func ParseAiiType(s string) (AiiType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "aii type cannot be empty")
	}
	t := AiiType(s)
	if !t.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown aii type: %s", s)
	}
	return t, nil
}

// IsValid checks if the type is one of the supported enum values.
func (t AiiType) IsValid() bool {
	return validAiiTypes[t]
}

// String returns the string representation of the type.
func (t AiiType) String() string {
	return string(t)
}
