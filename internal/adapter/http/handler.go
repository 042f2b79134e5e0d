package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"buzzline/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign and payment usecases and a logger for
// structured logging. Routes are registered on a chi.Router for
// convenient method handling; GET on the webhook path yields chi's
// default 405.
type Handler struct {
	campaigns port.CampaignUseCase
	payments  port.PaymentUseCase
	logger    *slog.Logger
	limiter   *rate.Limiter
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The limiter
// bounds campaign submissions; webhooks are never rate limited because
// the provider controls redelivery.
func NewHandler(campaigns port.CampaignUseCase, payments port.PaymentUseCase, logger *slog.Logger, limiter *rate.Limiter) *Handler {
	h := &Handler{campaigns: campaigns, payments: payments, logger: logger, limiter: limiter}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.With(h.rateLimit).Post("/campaigns", h.handleSubmitCampaign)
		r.Get("/campaigns/{id}", h.handleGetSubmission)
	})
	r.Post("/api/stripe/webhook", h.handleStripeWebhook)
	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// rateLimit rejects requests above the configured submission rate.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v with the given status. Encoding failures are
// logged; the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
