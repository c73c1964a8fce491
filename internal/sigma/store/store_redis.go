package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// RedisStore persists sigma values in Redis under sigma:{type}:{region}:{scenario}.
// An optional TTL bounds how long a computed sigma is considered current;
// zero keeps values until overwritten.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed sigma store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) string {
	return "sigma:" + sigmaKey(aiiType, region, scenario)
}

// Store upserts the sigma value under its key triple.
func (s *RedisStore) Store(ctx context.Context, sigma domain.Sigma) error {
	key := s.key(sigma.AiiType, sigma.Region, sigma.Scenario)
	if err := s.client.Set(ctx, key, sigma.Value.String(), s.ttl).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "store sigma in redis")
	}
	return nil
}

// Find returns the stored sigma for the key triple.
func (s *RedisStore) Find(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	raw, err := s.client.Get(ctx, s.key(aiiType, region, scenario)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Sigma{}, ErrNotFound
		}
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeInternal, "find sigma in redis")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeInternal, "parse stored sigma value")
	}
	return domain.NewSigma(aiiType, region, scenario, value)
}
