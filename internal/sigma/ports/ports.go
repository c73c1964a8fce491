// Package ports defines the capability contracts the sigma computation
// depends on. Implementations live in infrastructure packages (client, store)
// so the computation stays testable against mocks.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks RegionalValueFetcher,ThresholdFetcher,SigmaStore

import (
	"context"

	"github.com/shopspring/decimal"

	"sigmahub/pkg/domain"
)

// RegionalValueFetcher reads the region-specific raw indicator value for a
// (type, region, scenario) triple.
type RegionalValueFetcher interface {
	FetchRegionalValue(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (decimal.Decimal, error)
}

// ThresholdFetcher reads the global normalization threshold for a
// (type, scenario) pair.
type ThresholdFetcher interface {
	FetchThreshold(ctx context.Context, aiiType domain.AiiType, scenario domain.Scenario) (decimal.Decimal, error)
}

// SigmaStore persists computed sigma values. Each computation call re-stores
// its result; deduplication is the store's concern, not the caller's.
type SigmaStore interface {
	Store(ctx context.Context, sigma domain.Sigma) error
}
