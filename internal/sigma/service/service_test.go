package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sigmahub/internal/sigma/ports/mocks"
	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// =============================================================================
// PM2.5 Computation Service Test Suite
// =============================================================================
// Justification for unit tests: the computation pipeline has precise numeric
// semantics (6-dp half-up rounding, the -1 floor, zero-threshold rejection)
// and strict call-ordering guarantees that can only be pinned down against
// mocked boundaries.

type PM25ServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	regionalValues *mocks.MockRegionalValueFetcher
	thresholds     *mocks.MockThresholdFetcher
	store          *mocks.MockSigmaStore
	service        *PM25Service
}

func TestPM25ServiceSuite(t *testing.T) {
	suite.Run(t, new(PM25ServiceSuite))
}

func (s *PM25ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.regionalValues = mocks.NewMockRegionalValueFetcher(s.ctrl)
	s.thresholds = mocks.NewMockThresholdFetcher(s.ctrl)
	s.store = mocks.NewMockSigmaStore(s.ctrl)

	var err error
	s.service, err = NewPM25Service(s.regionalValues, s.thresholds, s.store)
	s.Require().NoError(err)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *PM25ServiceSuite) TestNewPM25Service() {
	s.Run("nil regional value fetcher returns error", func() {
		_, err := NewPM25Service(nil, s.thresholds, s.store)
		s.Error(err)
		s.Contains(err.Error(), "regional value fetcher is required")
	})

	s.Run("nil threshold fetcher returns error", func() {
		_, err := NewPM25Service(s.regionalValues, nil, s.store)
		s.Error(err)
	})

	s.Run("nil store returns error", func() {
		_, err := NewPM25Service(s.regionalValues, s.thresholds, nil)
		s.Error(err)
		s.Contains(err.Error(), "sigma store is required")
	})
}

// =============================================================================
// Supports Tests
// =============================================================================

func (s *PM25ServiceSuite) TestSupports() {
	s.True(s.service.Supports(domain.AiiTypePM25))
	s.False(s.service.Supports(domain.AiiTypeHeatStress))
}

// =============================================================================
// ComputeSigma Tests
// =============================================================================

func (s *PM25ServiceSuite) TestComputeSigma() {
	ctx := context.Background()
	region := domain.Region("DE")
	scenario := domain.Scenario("SSP2")

	s.Run("divides regional value by threshold at 6 decimal places", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("12.345000"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(dec("25.000000"), nil)

		var stored domain.Sigma
		s.store.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sigma domain.Sigma) error {
				stored = sigma
				return nil
			}).
			Times(1)

		sigma, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().NoError(err)
		s.Equal("0.493800", sigma.Value.StringFixed(6))
		s.True(stored.Value.Equal(sigma.Value), "store must receive the returned value")
		s.Equal(domain.AiiTypePM25, stored.AiiType)
		s.Equal(region, stored.Region)
		s.Equal(scenario, stored.Scenario)
	})

	s.Run("rounds half up", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("1.2345675"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(dec("1"), nil)
		s.store.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

		sigma, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().NoError(err)
		s.Equal("1.234568", sigma.Value.StringFixed(6))
	})

	s.Run("rounds ties away from zero for negative values", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("-0.0000005"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(dec("1"), nil)
		s.store.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

		sigma, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().NoError(err)
		s.Equal("-0.000001", sigma.Value.StringFixed(6))
	})

	s.Run("regional fetch failure propagates before threshold fetch", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(decimal.Zero, errors.New("connection refused"))
		// No threshold or store expectations: neither boundary may be touched.

		_, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
	})

	s.Run("threshold fetch failure propagates without storing", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("12.345"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(decimal.Zero, dErrors.New(dErrors.CodeNotFound, "scenario not found"))

		_, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound), "coded upstream errors keep their code")
	})

	s.Run("zero threshold is an arithmetic failure and never stores", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("12.345"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(decimal.Zero, nil)

		_, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeArithmetic))
	})

	s.Run("sigma below the floor is rejected and never stored", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("-12"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(dec("10"), nil)

		_, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("store failure fails the whole call", func() {
		s.regionalValues.EXPECT().
			FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, region, scenario).
			Return(dec("12.345"), nil)
		s.thresholds.EXPECT().
			FetchThreshold(gomock.Any(), domain.AiiTypePM25, scenario).
			Return(dec("25"), nil)
		s.store.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := s.service.ComputeSigma(ctx, domain.AiiTypePM25, region, scenario)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

// =============================================================================
// Event Publishing Tests
// =============================================================================

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) SigmaComputed(context.Context, domain.Sigma) error {
	p.calls++
	return errors.New("broker unavailable")
}

func (s *PM25ServiceSuite) TestEventPublishFailureDoesNotFailCall() {
	ctx := context.Background()
	publisher := &failingPublisher{}

	svc, err := NewPM25Service(s.regionalValues, s.thresholds, s.store,
		WithEventPublisher(publisher))
	s.Require().NoError(err)

	s.regionalValues.EXPECT().
		FetchRegionalValue(gomock.Any(), domain.AiiTypePM25, domain.Region("DE"), domain.Scenario("SSP2")).
		Return(dec("12.345"), nil)
	s.thresholds.EXPECT().
		FetchThreshold(gomock.Any(), domain.AiiTypePM25, domain.Scenario("SSP2")).
		Return(dec("25"), nil)
	s.store.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)

	sigma, err := svc.ComputeSigma(ctx, domain.AiiTypePM25, "DE", "SSP2")
	s.Require().NoError(err)
	s.Equal("0.493800", sigma.Value.StringFixed(6))
	s.Equal(1, publisher.calls)
}
