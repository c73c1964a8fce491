package handler

import (
	"sigmahub/pkg/domain"
)

// SigmaResponse is the HTTP response body for GET /api/sigma.
type SigmaResponse struct {
	AiiType  string `json:"aii_type"`
	Region   string `json:"region"`
	Scenario string `json:"scenario"`
	Value    string `json:"value"`
}

// FromSigma converts a domain sigma into its response representation.
// The value is rendered at the full six decimal places the computation keeps.
func FromSigma(sigma domain.Sigma) SigmaResponse {
	return SigmaResponse{
		AiiType:  sigma.AiiType.String(),
		Region:   sigma.Region.String(),
		Scenario: sigma.Scenario.String(),
		Value:    sigma.Value.StringFixed(6),
	}
}
