// Package client provides adapters for the upstream AII indicator service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// AiiClient fetches regional indicator values and normalization thresholds
// from the indicator service over HTTP.
//
// Wire contract: GET {base}/region?region=XX&scenario=Y and
// GET {base}/threshold?scenario=Y, both answering {"value": <number>}.
// The service is scoped per indicator type by its base URL, so the type
// parameter does not appear on the wire.
type AiiClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// valueResponse is the indicator service's single-value envelope.
type valueResponse struct {
	Value decimal.Decimal `json:"value"`
}

// NewAiiClient constructs an indicator service client.
func NewAiiClient(baseURL string, logger *slog.Logger) *AiiClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &AiiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// FetchRegionalValue retrieves the raw indicator value for a region and
// scenario.
//
// Errors: CodeNotFound when the service reports an unknown region/scenario,
// CodeUpstream for any other failure.
func (c *AiiClient) FetchRegionalValue(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (decimal.Decimal, error) {
	c.logger.InfoContext(ctx, "fetching regional indicator value",
		"aii_type", aiiType.String(),
		"region", region.String(),
		"scenario", scenario.String(),
	)

	query := url.Values{}
	query.Set("region", region.String())
	query.Set("scenario", scenario.String())
	return c.fetchValue(ctx, "/region", query)
}

// FetchThreshold retrieves the global normalization threshold for a scenario.
//
// Errors: CodeNotFound when the scenario is unknown, CodeUpstream otherwise.
func (c *AiiClient) FetchThreshold(ctx context.Context, aiiType domain.AiiType, scenario domain.Scenario) (decimal.Decimal, error) {
	c.logger.InfoContext(ctx, "fetching indicator threshold",
		"aii_type", aiiType.String(),
		"scenario", scenario.String(),
	)

	query := url.Values{}
	query.Set("scenario", scenario.String())
	return c.fetchValue(ctx, "/threshold", query)
}

func (c *AiiClient) fetchValue(ctx context.Context, path string, query url.Values) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, dErrors.Wrap(err, dErrors.CodeUpstream, "build indicator request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, dErrors.Wrap(err, dErrors.CodeUpstream, "call indicator service")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return decimal.Zero, dErrors.Newf(dErrors.CodeNotFound, "indicator service has no value for %s", path)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, dErrors.Newf(dErrors.CodeUpstream, "indicator service returned status %d", resp.StatusCode)
	}

	var body valueResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, dErrors.Wrap(err, dErrors.CodeUpstream, "decode indicator response")
	}
	return body.Value, nil
}
