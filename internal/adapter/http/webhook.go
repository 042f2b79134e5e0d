package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"buzzline/internal/core/port"
)

// maxWebhookBody caps how much of a webhook payload is read. Stripe
// events are far smaller; the cap only guards against abuse.
const maxWebhookBody = 1 << 20

// handleStripeWebhook receives signed payment-provider events. The body
// is passed through raw to preserve signature integrity. Missing or
// invalid signatures return 400 and are never retried by the provider;
// processing failures return 500 so the provider redelivers. Every
// recognized-and-handled event, including duplicates, returns 200.
func (h *Handler) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing stripe-signature header"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	result, err := h.payments.ProcessWebhook(r.Context(), payload, signature)
	if err != nil {
		if errors.Is(err, port.ErrMissingSignature) || errors.Is(err, port.ErrInvalidSignature) {
			h.logger.Warn("webhook rejected", slog.Any("error", err))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid signature"})
			return
		}
		h.logger.Error("webhook processing error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "internal error",
			"message": "event processing failed",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Message,
	})
}
