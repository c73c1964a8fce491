package domain

import (
	"github.com/shopspring/decimal"

	dErrors "sigmahub/pkg/domain-errors"
)

// sigmaFloor is the physical lower bound: a shock cannot erase more than
// 100% of the baseline production.
var sigmaFloor = decimal.NewFromInt(-1)

// Sigma is a normalized relative production-loss shock for a
// (type, region, scenario) triple.
// Invariant: Value >= -1.
type Sigma struct {
	AiiType  AiiType
	Region   Region
	Scenario Scenario
	Value    decimal.Decimal
}

// NewSigma constructs a validated Sigma.
//
// Errors: returns CodeInvalidInput when the key attributes are missing or the
// value is below the -1 floor. A computed sigma below the floor is rejected
// here, never clamped.
func NewSigma(aiiType AiiType, region Region, scenario Scenario, value decimal.Decimal) (Sigma, error) {
	if !aiiType.IsValid() {
		return Sigma{}, dErrors.New(dErrors.CodeInvalidInput, "sigma requires a valid aii type")
	}
	if region == "" {
		return Sigma{}, dErrors.New(dErrors.CodeInvalidInput, "sigma requires a region")
	}
	if scenario == "" {
		return Sigma{}, dErrors.New(dErrors.CodeInvalidInput, "sigma requires a scenario")
	}
	if value.LessThan(sigmaFloor) {
		return Sigma{}, dErrors.Newf(dErrors.CodeInvalidInput, "sigma must not be less than -1, got %s", value)
	}
	return Sigma{AiiType: aiiType, Region: region, Scenario: scenario, Value: value}, nil
}
