package domain

import (
	"strings"

	dErrors "sigmahub/pkg/domain-errors"
)

// Scenario names a socioeconomic or climate projection pathway
// (e.g. an SSP or RCP identifier).
// Invariant: non-blank.
type Scenario string

// ParseScenario constructs a Scenario from external input.
//
// Errors: returns CodeInvalidInput when the name is blank.
func ParseScenario(s string) (Scenario, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "scenario cannot be blank")
	}
	return Scenario(s), nil
}

// String returns the scenario name.
func (s Scenario) String() string {
	return string(s)
}
