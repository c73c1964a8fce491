package handler

import (
	"net/http"

	"sigmahub/pkg/domain"
)

// ComputeSigmaRequest carries the parsed, validated query parameters of
// GET /api/sigma.
type ComputeSigmaRequest struct {
	AiiType  domain.AiiType
	Region   domain.Region
	Scenario domain.Scenario
}

// parseComputeSigmaRequest builds a ComputeSigmaRequest from the raw query.
// Each parameter is validated by its domain parser; the first violation wins.
func parseComputeSigmaRequest(r *http.Request) (ComputeSigmaRequest, error) {
	query := r.URL.Query()

	aiiType, err := domain.ParseAiiType(query.Get("aii_type"))
	if err != nil {
		return ComputeSigmaRequest{}, err
	}

	region, err := domain.ParseRegion(query.Get("region"))
	if err != nil {
		return ComputeSigmaRequest{}, err
	}

	scenario, err := domain.ParseScenario(query.Get("scenario"))
	if err != nil {
		return ComputeSigmaRequest{}, err
	}

	return ComputeSigmaRequest{
		AiiType:  aiiType,
		Region:   region,
		Scenario: scenario,
	}, nil
}
