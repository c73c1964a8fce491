package client

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// MockAiiClient serves deterministic indicator data with a configurable
// latency to mimic real-world calls. Used for local development when no
// indicator service is running.
type MockAiiClient struct {
	Latency time.Duration
}

// mockRegionalValues holds sample PM2.5 annual means by region.
var mockRegionalValues = map[domain.Region]decimal.Decimal{
	"DE": decimal.RequireFromString("12.345"),
	"IN": decimal.RequireFromString("54.210"),
	"US": decimal.RequireFromString("9.870"),
}

// mockThreshold mirrors the WHO interim PM2.5 guideline used as the
// normalization baseline in sample data.
var mockThreshold = decimal.RequireFromString("25.000")

func (c MockAiiClient) FetchRegionalValue(_ context.Context, _ domain.AiiType, region domain.Region, _ domain.Scenario) (decimal.Decimal, error) {
	time.Sleep(c.Latency)
	value, ok := mockRegionalValues[region]
	if !ok {
		return decimal.Zero, dErrors.Newf(dErrors.CodeNotFound, "no sample value for region %s", region)
	}
	return value, nil
}

func (c MockAiiClient) FetchThreshold(_ context.Context, _ domain.AiiType, _ domain.Scenario) (decimal.Decimal, error) {
	time.Sleep(c.Latency)
	return mockThreshold, nil
}
