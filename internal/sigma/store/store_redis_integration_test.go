//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"sigmahub/internal/sigma/store"
	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
	"sigmahub/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = store.NewRedisStore(s.redis.Client, 0)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestStoreAndFind() {
	ctx := context.Background()

	sigma, err := domain.NewSigma(domain.AiiTypePM25, "DE", "SSP2", decimal.RequireFromString("0.4938"))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Store(ctx, sigma))

	found, err := s.store.Find(ctx, domain.AiiTypePM25, "DE", "SSP2")
	s.Require().NoError(err)
	s.True(found.Value.Equal(sigma.Value))
}

func (s *RedisStoreSuite) TestFindMissingIsNotFound() {
	_, err := s.store.Find(context.Background(), domain.AiiTypePM25, "FR", "SSP5")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *RedisStoreSuite) TestTTLExpiresValues() {
	ctx := context.Background()
	ttlStore := store.NewRedisStore(s.redis.Client, 100*time.Millisecond)

	sigma, err := domain.NewSigma(domain.AiiTypePM25, "DE", "SSP2", decimal.RequireFromString("0.1"))
	s.Require().NoError(err)
	s.Require().NoError(ttlStore.Store(ctx, sigma))

	time.Sleep(200 * time.Millisecond)

	_, err = ttlStore.Find(ctx, domain.AiiTypePM25, "DE", "SSP2")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
