package domain

// PaymentEventType enumerates the provider notifications the webhook
// processor recognizes. Anything else is acknowledged untouched.
type PaymentEventType string

const (
	EventCheckoutCompleted PaymentEventType = "checkout.session.completed"
	EventPaymentSucceeded  PaymentEventType = "payment_intent.succeeded"
	EventPaymentFailed     PaymentEventType = "payment_intent.payment_failed"
	EventChargeRefunded    PaymentEventType = "charge.refunded"
)

// PaymentEvent is the provider-neutral form of one signed webhook
// notification, produced by the verifier after signature checking.
type PaymentEvent struct {
	Type            PaymentEventType
	EventID         string
	SessionID       string
	PaymentIntentID string
	RefundedCharge  string
	CustomerEmail   string
	FailureMessage  string
	Metadata        CheckoutMetadata
}

// CheckoutMetadata carries the campaign-purchase context attached to a
// checkout session at creation time. All four fields are mandatory for a
// completed checkout; a gap indicates a broken checkout-creation path.
type CheckoutMetadata struct {
	UserID     string
	BusinessID string
	PackageID  string
	Credits    int64
}

// MissingFields lists which mandatory metadata fields are absent.
func (m CheckoutMetadata) MissingFields() []string {
	var missing []string
	if m.UserID == "" {
		missing = append(missing, "userId")
	}
	if m.BusinessID == "" {
		missing = append(missing, "businessId")
	}
	if m.PackageID == "" {
		missing = append(missing, "packageId")
	}
	if m.Credits <= 0 {
		missing = append(missing, "credits")
	}
	return missing
}
