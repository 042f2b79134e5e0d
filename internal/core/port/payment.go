package port

import (
	"context"
	"errors"

	"buzzline/internal/core/domain"
)

var (
	// ErrMissingSignature is returned when the webhook request carries no
	// signature header. Permanent: the provider will not fix it by retrying.
	ErrMissingSignature = errors.New("missing webhook signature")

	// ErrInvalidSignature is returned when signature verification fails.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Webhook processing outcomes.
const (
	ResultProcessed    = "processed"
	ResultDuplicate    = "already processed"
	ResultAcknowledged = "acknowledged"
)

// WebhookResult reports how a verified event was handled. Every result
// maps to an HTTP 200 so the provider stops redelivering.
type WebhookResult struct {
	Status  string
	Message string
}

// PaymentUseCase is the inbound port for the payment webhook processor.
type PaymentUseCase interface {
	// ProcessWebhook verifies the raw payload against the signature,
	// dispatches by event type and applies at-most-once credit handling
	// per payment intent. Signature errors unwrap to ErrMissingSignature
	// or ErrInvalidSignature; any other error is transient and should be
	// answered with a 500 so the provider retries.
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (WebhookResult, error)
}

// WebhookVerifier checks the provider signature over the raw payload and
// normalizes the event. It returns (nil, nil) for event types the
// processor does not recognize.
type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error)
}

// VerifyPaymentRequest is the body of the backend verify-payment call.
type VerifyPaymentRequest struct {
	SessionID       string `json:"sessionId"`
	PaymentIntentID string `json:"paymentIntentId"`
	UserID          string `json:"userId"`
	BusinessID      string `json:"businessId"`
	Credits         int64  `json:"credits"`
	PackageID       string `json:"packageId"`
}

// DeductCreditsRequest asks the backend to claw back credits for a
// refunded charge.
type DeductCreditsRequest struct {
	ChargeID        string `json:"chargeId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// PaymentBackend is the credit-ledger side of the backend API. It must
// be idempotent on paymentIntentId; the local idempotency store is only
// a duplicate suppressor, not the correctness boundary.
type PaymentBackend interface {
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error
	DeductCredits(ctx context.Context, req DeductCreditsRequest) error
}

// IdempotencyStore records which payment keys have already been applied.
// Implementations must make MarkProcessed safe to call more than once.
type IdempotencyStore interface {
	Processed(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string) error
}

// ConfirmationMail is a purchase confirmation to a business user.
type ConfirmationMail struct {
	To              string
	Credits         int64
	PaymentIntentID string
}

// FailureMail notifies a business user about a failed payment.
type FailureMail struct {
	To              string
	Reason          string
	PaymentIntentID string
}

// MailQueue accepts mail jobs without blocking. Delivery is best-effort;
// enqueue never reports an error because mail failures must not affect
// webhook responses.
type MailQueue interface {
	EnqueueConfirmation(mail ConfirmationMail)
	EnqueueFailureNotice(mail FailureMail)
}
