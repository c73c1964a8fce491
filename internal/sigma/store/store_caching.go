package store

import (
	"context"
	"errors"

	"sigmahub/pkg/domain"
)

// Backend is the read/write surface shared by all sigma stores.
type Backend interface {
	Store(ctx context.Context, sigma domain.Sigma) error
	Find(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error)
}

// CachingStore layers a fast cache over an authoritative primary store.
// Writes go to the primary first; a write that reaches only the cache must
// never outlive the primary's copy, so cache failures after a primary write
// are swallowed.
type CachingStore struct {
	cache   Backend
	primary Backend
}

// NewCachingStore wraps primary with cache.
func NewCachingStore(cache, primary Backend) *CachingStore {
	return &CachingStore{cache: cache, primary: primary}
}

// Store upserts into the primary, then refreshes the cache best-effort.
func (s *CachingStore) Store(ctx context.Context, sigma domain.Sigma) error {
	if err := s.primary.Store(ctx, sigma); err != nil {
		return err
	}
	// Cache refresh is best effort; a stale entry expires via TTL.
	_ = s.cache.Store(ctx, sigma)
	return nil
}

// Find checks the cache first and falls back to the primary, backfilling the
// cache on a primary hit.
func (s *CachingStore) Find(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	sigma, err := s.cache.Find(ctx, aiiType, region, scenario)
	if err == nil {
		return sigma, nil
	}
	if !errors.Is(err, ErrNotFound) {
		// A broken cache degrades to primary reads rather than failing.
		sigma, err = s.primary.Find(ctx, aiiType, region, scenario)
		return sigma, err
	}

	sigma, err = s.primary.Find(ctx, aiiType, region, scenario)
	if err != nil {
		return domain.Sigma{}, err
	}
	_ = s.cache.Store(ctx, sigma)
	return sigma, nil
}
