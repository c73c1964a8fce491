package service

import (
	"context"
	"log/slog"

	"sigmahub/pkg/domain"
	dErrors "sigmahub/pkg/domain-errors"
)

// Router dispatches sigma computations to the computer registered for the
// requested aii type.
//
// The dispatch table is built once at construction from the closed AiiType
// set: each registered computer claims the types it supports, in registration
// order, and the first claim for a type wins. Dispatch is then a single map
// lookup per call, with no per-request scanning and no hidden discovery.
type Router struct {
	handlers map[domain.AiiType]Computer
	logger   *slog.Logger
}

// NewRouter builds the dispatch table from the given computers.
// Registration order is significant: when two computers claim the same type,
// the first keeps it and the duplicate is logged and skipped.
func NewRouter(logger *slog.Logger, computers ...Computer) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	handlers := make(map[domain.AiiType]Computer, len(domain.AiiTypes()))
	for _, c := range computers {
		for _, t := range domain.AiiTypes() {
			if !c.Supports(t) {
				continue
			}
			if _, taken := handlers[t]; taken {
				logger.Warn("duplicate sigma computer registration, keeping first",
					"aii_type", t.String(),
				)
				continue
			}
			handlers[t] = c
		}
	}

	return &Router{handlers: handlers, logger: logger}
}

// ComputeSigma delegates to the computer registered for the type.
//
// Errors: returns CodeUnsupported naming the type when no computer is
// registered for it. That is a configuration error, not a transient fault:
// callers must not retry it. No boundary is touched on that path.
func (r *Router) ComputeSigma(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error) {
	computer, ok := r.handlers[aiiType]
	if !ok {
		return domain.Sigma{}, dErrors.Newf(dErrors.CodeUnsupported, "no handler for aii type: %s", aiiType)
	}
	return computer.ComputeSigma(ctx, aiiType, region, scenario)
}

// Supports always reports false so the router can never be selected as one
// of its own delegates.
func (r *Router) Supports(domain.AiiType) bool {
	return false
}
