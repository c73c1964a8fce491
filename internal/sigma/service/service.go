// Package service implements the sigma computation strategies and the router
// that dispatches requests to them.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sigmahub/internal/sigma/metrics"
	"sigmahub/internal/sigma/ports"
	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// sigmaScale is the number of decimal places kept after normalization.
const sigmaScale = 6

// Computer computes sigma values for the aii types it declares support for.
// Each implementation is scoped to exactly one type; supporting a new type
// means registering a new implementation, never modifying an existing one.
type Computer interface {
	// ComputeSigma fetches the regional value and the normalization
	// threshold, divides, persists the result, and returns it. The call is
	// atomic from the caller's perspective: a persisted-but-failed or
	// computed-but-unstored sigma is never reported as success.
	ComputeSigma(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error)

	// Supports reports whether this computer handles the given type.
	// Pure; no side effects.
	Supports(aiiType domain.AiiType) bool
}

// EventPublisher emits a notification after a sigma was computed and stored.
// Publishing is best-effort observability; failures never fail the call.
type EventPublisher interface {
	SigmaComputed(ctx context.Context, sigma domain.Sigma) error
}

// PM25Service computes sigma values for the PM2.5 indicator.
type PM25Service struct {
	regionalValues ports.RegionalValueFetcher
	thresholds     ports.ThresholdFetcher
	store          ports.SigmaStore
	events         EventPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
}

// Option configures a PM25Service.
type Option func(*PM25Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *PM25Service) {
		s.logger = logger
	}
}

// WithMetrics sets the sigma module metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *PM25Service) {
		s.metrics = m
	}
}

// WithEventPublisher sets the computed-sigma event publisher.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *PM25Service) {
		s.events = p
	}
}

// NewPM25Service constructs the PM2.5 computation strategy.
func NewPM25Service(regionalValues ports.RegionalValueFetcher, thresholds ports.ThresholdFetcher, store ports.SigmaStore, opts ...Option) (*PM25Service, error) {
	if regionalValues == nil {
		return nil, fmt.Errorf("regional value fetcher is required")
	}
	if thresholds == nil {
		return nil, fmt.Errorf("threshold fetcher is required")
	}
	if store == nil {
		return nil, fmt.Errorf("sigma store is required")
	}

	svc := &PM25Service{
		regionalValues: regionalValues,
		thresholds:     thresholds,
		store:          store,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc, nil
}

// Supports reports true only for the PM2.5 indicator.
func (s *PM25Service) Supports(aiiType domain.AiiType) bool {
	return aiiType == domain.AiiTypePM25
}

// ComputeSigma normalizes the regional PM2.5 value against the scenario
// threshold, persists the result, and returns it.
//
// The threshold fetch completes before any division is attempted, and the
// store completes (or fails) before the call returns. No retry or fallback
// happens here; resilience belongs to the boundaries.
func (s *PM25Service) ComputeSigma(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	start := time.Now()

	fetchStart := time.Now()
	regionValue, err := s.regionalValues.FetchRegionalValue(ctx, aiiType, region, scenario)
	if err != nil {
		s.metrics.IncrementOutcome(aiiType.String(), "fetch_error")
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeUpstream, "fetch regional value")
	}
	s.metrics.ObserveFetchLatency("regional_value", time.Since(fetchStart))

	fetchStart = time.Now()
	threshold, err := s.thresholds.FetchThreshold(ctx, aiiType, scenario)
	if err != nil {
		s.metrics.IncrementOutcome(aiiType.String(), "fetch_error")
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeUpstream, "fetch threshold")
	}
	s.metrics.ObserveFetchLatency("threshold", time.Since(fetchStart))

	if threshold.IsZero() {
		s.metrics.IncrementOutcome(aiiType.String(), "arithmetic_error")
		return domain.Sigma{}, dErrors.Newf(dErrors.CodeArithmetic,
			"threshold is zero for type=%s scenario=%s", aiiType, scenario)
	}

	value := regionValue.DivRound(threshold, sigmaScale)

	sigma, err := domain.NewSigma(aiiType, region, scenario, value)
	if err != nil {
		s.metrics.IncrementOutcome(aiiType.String(), "invalid")
		return domain.Sigma{}, err
	}

	if err := s.store.Store(ctx, sigma); err != nil {
		s.metrics.IncrementOutcome(aiiType.String(), "store_error")
		return domain.Sigma{}, dErrors.Wrap(err, dErrors.CodeInternal, "store sigma")
	}

	if s.events != nil {
		if err := s.events.SigmaComputed(ctx, sigma); err != nil {
			s.logger.WarnContext(ctx, "failed to publish sigma event",
				"aii_type", aiiType.String(),
				"region", region.String(),
				"scenario", scenario.String(),
				"error", err,
			)
		}
	}

	s.metrics.IncrementOutcome(aiiType.String(), "success")
	s.metrics.ObserveComputeLatency(time.Since(start))

	s.logger.InfoContext(ctx, "computed sigma",
		"aii_type", aiiType.String(),
		"region", region.String(),
		"scenario", scenario.String(),
		"value", sigma.Value.String(),
	)

	return sigma, nil
}
