// Package handler wires the sigma computation endpoint to the router service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sigmahub/pkg/domain"
	"sigmahub/pkg/platform/httputil"
	"sigmahub/pkg/requestcontext"
)

// Service defines the interface for sigma computation dispatch.
type Service interface {
	ComputeSigma(ctx context.Context, aiiType domain.AiiType, region domain.Region, scenario domain.Scenario) (domain.Sigma, error)
}

// Handler wires sigma endpoints to the computation router.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a sigma handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts sigma endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/sigma", h.HandleComputeSigma)
}

// HandleComputeSigma handles GET /api/sigma requests.
//
// The transport layer owns construction of validated domain values: parse
// failures surface as invalid-input errors here, before any boundary is
// touched.
func (h *Handler) HandleComputeSigma(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, err := parseComputeSigmaRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sigma, err := h.service.ComputeSigma(ctx, req.AiiType, req.Region, req.Scenario)
	if err != nil {
		h.logger.ErrorContext(ctx, "sigma computation failed",
			"request_id", requestID,
			"aii_type", req.AiiType.String(),
			"region", req.Region.String(),
			"scenario", req.Scenario.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "sigma computed",
		"request_id", requestID,
		"aii_type", req.AiiType.String(),
		"region", req.Region.String(),
		"scenario", req.Scenario.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromSigma(sigma))
}
