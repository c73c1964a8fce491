package domain

import (
	"github.com/shopspring/decimal"

	dErrors "sigmahub/pkg/domain-errors"
)

// DirectExposure is a sector-level loss derived from a sigma: the sector's
// baseline loss figure multiplied by the shock value.
type DirectExposure struct {
	Sector Sector
	Sigma  Sigma
	Value  decimal.Decimal
}

// NewDirectExposure constructs a validated DirectExposure from an already
// derived value.
//
// Errors: returns CodeInvalidInput when the sector is missing.
func NewDirectExposure(sector Sector, sigma Sigma, value decimal.Decimal) (DirectExposure, error) {
	if sector == "" {
		return DirectExposure{}, dErrors.New(dErrors.CodeInvalidInput, "direct exposure requires a sector")
	}
	return DirectExposure{Sector: sector, Sigma: sigma, Value: value}, nil
}

// DeriveDirectExposure computes the exposure value as sectorLoss * sigma.
func DeriveDirectExposure(sector Sector, sectorLoss decimal.Decimal, sigma Sigma) (DirectExposure, error) {
	return NewDirectExposure(sector, sigma, sectorLoss.Mul(sigma.Value))
}

// IndirectRiskResult captures propagated risk for a sector once an
// input-output propagation engine produces it. No propagation algorithm lives
// in this repository; the type exists so such an engine can consume Sigma and
// DirectExposure values and hand results back in domain terms.
type IndirectRiskResult struct {
	Sector       Sector
	Region       Region
	AiiType      AiiType
	Scenario     Scenario
	IndirectRisk decimal.Decimal
}

// NewIndirectRiskResult constructs a validated IndirectRiskResult.
//
// Errors: returns CodeInvalidInput when key attributes are missing.
func NewIndirectRiskResult(sector Sector, region Region, aiiType AiiType, scenario Scenario, indirectRisk decimal.Decimal) (IndirectRiskResult, error) {
	if sector == "" {
		return IndirectRiskResult{}, dErrors.New(dErrors.CodeInvalidInput, "indirect risk requires a sector")
	}
	if region == "" {
		return IndirectRiskResult{}, dErrors.New(dErrors.CodeInvalidInput, "indirect risk requires a region")
	}
	if !aiiType.IsValid() {
		return IndirectRiskResult{}, dErrors.New(dErrors.CodeInvalidInput, "indirect risk requires a valid aii type")
	}
	if scenario == "" {
		return IndirectRiskResult{}, dErrors.New(dErrors.CodeInvalidInput, "indirect risk requires a scenario")
	}
	return IndirectRiskResult{
		Sector:       sector,
		Region:       region,
		AiiType:      aiiType,
		Scenario:     scenario,
		IndirectRisk: indirectRisk,
	}, nil
}
