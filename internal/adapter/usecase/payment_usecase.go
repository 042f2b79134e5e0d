package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"buzzline/internal/core/apperr"
	"buzzline/internal/core/domain"
	"buzzline/internal/core/port"
	"buzzline/internal/metrics"
)

// refundKeyPrefix namespaces refund idempotency keys so a refund and its
// original payment never collide in the store.
const refundKeyPrefix = "refund:"

// PaymentUseCase processes signed payment-provider webhooks. Per event
// the flow is: verify signature, dispatch by type, suppress duplicates
// by payment intent, call the backend credit ledger and queue a
// best-effort notification email. The backend is assumed idempotent on
// paymentIntentId; the store and singleflight only narrow the duplicate
// window.
type PaymentUseCase struct {
	verifier port.WebhookVerifier
	backend  port.PaymentBackend
	store    port.IdempotencyStore
	mail     port.MailQueue
	logger   *slog.Logger

	// sf collapses concurrent deliveries of the same payment intent
	// within this process, closing the check-then-act gap of the store.
	sf singleflight.Group
}

// NewPaymentUseCase creates the webhook processor with its collaborators.
func NewPaymentUseCase(
	verifier port.WebhookVerifier,
	backend port.PaymentBackend,
	store port.IdempotencyStore,
	mail port.MailQueue,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		verifier: verifier,
		backend:  backend,
		store:    store,
		mail:     mail,
		logger:   logger,
	}
}

// ProcessWebhook handles one delivery. Signature failures unwrap to
// port.ErrMissingSignature / port.ErrInvalidSignature; every other error
// is transient from the provider's perspective and should be answered
// with a 500 so the event is redelivered.
func (u *PaymentUseCase) ProcessWebhook(ctx context.Context, payload []byte, signature string) (port.WebhookResult, error) {
	start := time.Now()
	defer func() { metrics.WebhookDuration.Observe(time.Since(start).Seconds()) }()

	if strings.TrimSpace(signature) == "" {
		metrics.RecordWebhookEvent("unknown", "rejected")
		return port.WebhookResult{}, port.ErrMissingSignature
	}

	event, err := u.verifier.VerifyAndParse(payload, signature)
	if err != nil {
		metrics.RecordWebhookEvent("unknown", "rejected")
		return port.WebhookResult{}, fmt.Errorf("%w: %v", port.ErrInvalidSignature, err)
	}
	if event == nil {
		metrics.RecordWebhookEvent("unrecognized", "acknowledged")
		return port.WebhookResult{Status: port.ResultAcknowledged, Message: "event type not handled"}, nil
	}

	log := u.logger.With(
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.EventID),
		slog.String("payment_intent_id", event.PaymentIntentID))

	switch event.Type {
	case domain.EventCheckoutCompleted:
		return u.handleCheckoutCompleted(ctx, event, log)
	case domain.EventChargeRefunded:
		return u.handleChargeRefunded(ctx, event, log)
	case domain.EventPaymentFailed:
		return u.handlePaymentFailed(event, log)
	case domain.EventPaymentSucceeded:
		log.Info("payment intent succeeded")
		metrics.RecordWebhookEvent(string(event.Type), "acknowledged")
		return port.WebhookResult{Status: port.ResultAcknowledged, Message: "payment intent acknowledged"}, nil
	default:
		log.Info("unhandled event type acknowledged")
		metrics.RecordWebhookEvent(string(event.Type), "acknowledged")
		return port.WebhookResult{Status: port.ResultAcknowledged, Message: "event type not handled"}, nil
	}
}

// handleCheckoutCompleted applies the credit purchase at most once per
// payment intent. The intent is marked processed only after the backend
// verify succeeds, so a failed call stays retryable via redelivery.
func (u *PaymentUseCase) handleCheckoutCompleted(ctx context.Context, event *domain.PaymentEvent, log *slog.Logger) (port.WebhookResult, error) {
	if event.PaymentIntentID == "" {
		metrics.RecordWebhookEvent(string(event.Type), "error")
		return port.WebhookResult{}, apperr.New(apperr.Server, "checkout session has no payment intent")
	}

	v, err, _ := u.sf.Do(event.PaymentIntentID, func() (interface{}, error) {
		done, err := u.store.Processed(ctx, event.PaymentIntentID)
		if err != nil {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		if done {
			log.Info("duplicate checkout event suppressed")
			metrics.RecordWebhookEvent(string(event.Type), "duplicate")
			return port.WebhookResult{Status: port.ResultDuplicate, Message: "payment already processed"}, nil
		}

		if missing := event.Metadata.MissingFields(); len(missing) > 0 {
			log.Error("checkout metadata incomplete", slog.Any("missing", missing))
			metrics.RecordWebhookEvent(string(event.Type), "error")
			return nil, apperr.New(apperr.Server,
				"checkout metadata missing fields: "+strings.Join(missing, ", "))
		}

		req := port.VerifyPaymentRequest{
			SessionID:       event.SessionID,
			PaymentIntentID: event.PaymentIntentID,
			UserID:          event.Metadata.UserID,
			BusinessID:      event.Metadata.BusinessID,
			Credits:         event.Metadata.Credits,
			PackageID:       event.Metadata.PackageID,
		}
		if err = u.backend.VerifyPayment(ctx, req); err != nil {
			metrics.RecordWebhookEvent(string(event.Type), "error")
			return nil, fmt.Errorf("verify payment: %w", err)
		}

		if err = u.store.MarkProcessed(ctx, event.PaymentIntentID); err != nil {
			// Credits were granted. The backend's own idempotency makes a
			// redelivered retry safe, so do not fail the response.
			log.Warn("failed to mark payment processed", slog.Any("error", err))
		}

		if event.CustomerEmail != "" {
			u.mail.EnqueueConfirmation(port.ConfirmationMail{
				To:              event.CustomerEmail,
				Credits:         event.Metadata.Credits,
				PaymentIntentID: event.PaymentIntentID,
			})
		}

		log.Info("payment verified and credits applied",
			slog.Int64("credits", event.Metadata.Credits),
			slog.String("business_id", event.Metadata.BusinessID))
		metrics.RecordWebhookEvent(string(event.Type), "processed")
		return port.WebhookResult{Status: port.ResultProcessed, Message: "payment verified"}, nil
	})
	if err != nil {
		return port.WebhookResult{}, err
	}
	return v.(port.WebhookResult), nil
}

// handleChargeRefunded asks the backend to deduct the refunded credits,
// idempotent per refunded charge.
func (u *PaymentUseCase) handleChargeRefunded(ctx context.Context, event *domain.PaymentEvent, log *slog.Logger) (port.WebhookResult, error) {
	if event.RefundedCharge == "" {
		log.Warn("refund event without charge id acknowledged")
		metrics.RecordWebhookEvent(string(event.Type), "acknowledged")
		return port.WebhookResult{Status: port.ResultAcknowledged, Message: "refund without charge id"}, nil
	}

	key := refundKeyPrefix + event.RefundedCharge
	v, err, _ := u.sf.Do(key, func() (interface{}, error) {
		done, err := u.store.Processed(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		if done {
			metrics.RecordWebhookEvent(string(event.Type), "duplicate")
			return port.WebhookResult{Status: port.ResultDuplicate, Message: "refund already processed"}, nil
		}

		req := port.DeductCreditsRequest{
			ChargeID:        event.RefundedCharge,
			PaymentIntentID: event.PaymentIntentID,
		}
		if err = u.backend.DeductCredits(ctx, req); err != nil {
			metrics.RecordWebhookEvent(string(event.Type), "error")
			return nil, fmt.Errorf("deduct credits: %w", err)
		}
		if err = u.store.MarkProcessed(ctx, key); err != nil {
			log.Warn("failed to mark refund processed", slog.Any("error", err))
		}

		log.Info("refund applied", slog.String("charge_id", event.RefundedCharge))
		metrics.RecordWebhookEvent(string(event.Type), "processed")
		return port.WebhookResult{Status: port.ResultProcessed, Message: "refund applied"}, nil
	})
	if err != nil {
		return port.WebhookResult{}, err
	}
	return v.(port.WebhookResult), nil
}

// handlePaymentFailed queues a failure notice when the payer is known.
// The event itself only needs acknowledgment.
func (u *PaymentUseCase) handlePaymentFailed(event *domain.PaymentEvent, log *slog.Logger) (port.WebhookResult, error) {
	if event.CustomerEmail != "" {
		u.mail.EnqueueFailureNotice(port.FailureMail{
			To:              event.CustomerEmail,
			Reason:          event.FailureMessage,
			PaymentIntentID: event.PaymentIntentID,
		})
	}
	log.Info("payment failure acknowledged", slog.String("reason", event.FailureMessage))
	metrics.RecordWebhookEvent(string(event.Type), "acknowledged")
	return port.WebhookResult{Status: port.ResultAcknowledged, Message: "payment failure acknowledged"}, nil
}
