// Package store provides sigma persistence backends. All backends upsert on
// the (type, region, scenario) key: each computation call re-stores its
// result and the latest write wins.
package store

import (
	"context"
	"fmt"
	"sync"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// ErrNotFound keeps store-specific lookups consistent across backends.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "sigma not found")

func sigmaKey(aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) string {
	return fmt.Sprintf("%s:%s:%s", aiiType, region, scenario)
}

// MemoryStore is an in-memory sigma store for tests and local development.
type MemoryStore struct {
	mu     sync.RWMutex
	sigmas map[string]domain.Sigma
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sigmas: make(map[string]domain.Sigma)}
}

// Store upserts the sigma under its key triple.
func (s *MemoryStore) Store(_ context.Context, sigma domain.Sigma) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sigmas[sigmaKey(sigma.AiiType, sigma.Region, sigma.Scenario)] = sigma
	return nil
}

// Find returns the stored sigma for the key triple.
func (s *MemoryStore) Find(_ context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sigma, ok := s.sigmas[sigmaKey(aiiType, region, scenario)]
	if !ok {
		return domain.Sigma{}, ErrNotFound
	}
	return sigma, nil
}

// Len reports how many distinct key triples are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sigmas)
}
