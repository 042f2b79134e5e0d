// Package stripeadapter verifies Stripe webhook signatures and maps
// provider events onto the domain's provider-neutral payment events.
package stripeadapter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"buzzline/internal/core/domain"
)

// Verifier checks the Stripe-Signature header against the endpoint's
// webhook secret and normalizes recognized events.
type Verifier struct {
	secret string
}

// NewVerifier creates a verifier for the given webhook signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// VerifyAndParse validates the signature over the raw payload, then
// maps the event. Event types outside the processor's scope yield
// (nil, nil). The payload must be the unmodified request body; any
// re-serialization breaks the signature.
func (v *Verifier) VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return nil, fmt.Errorf("stripe signature verification: %w", err)
	}

	switch event.Type {
	case string(domain.EventCheckoutCompleted):
		return parseCheckoutSession(event)
	case string(domain.EventPaymentSucceeded), string(domain.EventPaymentFailed):
		return parsePaymentIntent(event)
	case string(domain.EventChargeRefunded):
		return parseCharge(event)
	}
	return nil, nil
}

func parseCheckoutSession(event stripe.Event) (*domain.PaymentEvent, error) {
	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	out := &domain.PaymentEvent{
		Type:      domain.EventCheckoutCompleted,
		EventID:   event.ID,
		SessionID: s.ID,
		Metadata: domain.CheckoutMetadata{
			UserID:     s.Metadata["userId"],
			BusinessID: s.Metadata["businessId"],
			PackageID:  s.Metadata["packageId"],
			Credits:    parseCredits(s.Metadata["credits"]),
		},
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	switch {
	case s.CustomerDetails != nil && s.CustomerDetails.Email != "":
		out.CustomerEmail = s.CustomerDetails.Email
	case s.CustomerEmail != "":
		out.CustomerEmail = s.CustomerEmail
	}
	return out, nil
}

func parsePaymentIntent(event stripe.Event) (*domain.PaymentEvent, error) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}

	out := &domain.PaymentEvent{
		Type:            domain.PaymentEventType(event.Type),
		EventID:         event.ID,
		PaymentIntentID: pi.ID,
		CustomerEmail:   pi.ReceiptEmail,
	}
	if pi.LastPaymentError != nil {
		out.FailureMessage = pi.LastPaymentError.Msg
	}
	return out, nil
}

func parseCharge(event stripe.Event) (*domain.PaymentEvent, error) {
	var ch stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
		return nil, fmt.Errorf("decode charge: %w", err)
	}

	out := &domain.PaymentEvent{
		Type:           domain.EventChargeRefunded,
		EventID:        event.ID,
		RefundedCharge: ch.ID,
		CustomerEmail:  ch.ReceiptEmail,
	}
	if ch.PaymentIntent != nil {
		out.PaymentIntentID = ch.PaymentIntent.ID
	}
	return out, nil
}

// parseCredits tolerates a malformed credits value by returning zero;
// the usecase reports it as missing metadata.
func parseCredits(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
