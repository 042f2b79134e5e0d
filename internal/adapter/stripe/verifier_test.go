package stripeadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"buzzline/internal/core/domain"
)

const testSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe does: an
// HMAC-SHA256 of "<timestamp>.<payload>" under the endpoint secret.
func signPayload(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutPayload() []byte {
	return []byte(`{
		"id": "evt_1",
		"api_version": "2022-11-15",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"object": "checkout.session",
				"payment_intent": "pi_123",
				"customer_details": {"email": "owner@business.example"},
				"metadata": {
					"userId": "u_1",
					"businessId": "b_1",
					"packageId": "pkg_500",
					"credits": "500"
				}
			}
		}
	}`)
}

func TestVerifyAndParseCheckout(t *testing.T) {
	payload := checkoutPayload()
	v := NewVerifier(testSecret)

	event, err := v.VerifyAndParse(payload, signPayload(payload, testSecret, time.Now()))
	if err != nil {
		t.Fatalf("VerifyAndParse: %v", err)
	}
	if event == nil {
		t.Fatal("expected event")
	}
	if event.Type != domain.EventCheckoutCompleted {
		t.Fatalf("type = %q", event.Type)
	}
	if event.SessionID != "cs_1" || event.PaymentIntentID != "pi_123" {
		t.Fatalf("ids = %q/%q", event.SessionID, event.PaymentIntentID)
	}
	if event.CustomerEmail != "owner@business.example" {
		t.Fatalf("email = %q", event.CustomerEmail)
	}
	want := domain.CheckoutMetadata{UserID: "u_1", BusinessID: "b_1", PackageID: "pkg_500", Credits: 500}
	if event.Metadata != want {
		t.Fatalf("metadata = %+v", event.Metadata)
	}
}

func TestVerifyAndParseWrongSecret(t *testing.T) {
	payload := checkoutPayload()
	v := NewVerifier(testSecret)

	if _, err := v.VerifyAndParse(payload, signPayload(payload, "whsec_other", time.Now())); err == nil {
		t.Fatal("signature under a different secret must be rejected")
	}
}

func TestVerifyAndParseTamperedPayload(t *testing.T) {
	payload := checkoutPayload()
	v := NewVerifier(testSecret)
	sig := signPayload(payload, testSecret, time.Now())

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = ' '
	if _, err := v.VerifyAndParse(tampered, sig); err == nil {
		t.Fatal("tampered payload must be rejected")
	}
}

func TestVerifyAndParseStaleTimestamp(t *testing.T) {
	payload := checkoutPayload()
	v := NewVerifier(testSecret)

	sig := signPayload(payload, testSecret, time.Now().Add(-time.Hour))
	if _, err := v.VerifyAndParse(payload, sig); err == nil {
		t.Fatal("stale signature must be rejected")
	}
}

func TestVerifyAndParseIgnoredType(t *testing.T) {
	payload := []byte(`{"id":"evt_2","api_version":"2022-11-15","type":"customer.created","data":{"object":{}}}`)
	v := NewVerifier(testSecret)

	event, err := v.VerifyAndParse(payload, signPayload(payload, testSecret, time.Now()))
	if err != nil {
		t.Fatalf("VerifyAndParse: %v", err)
	}
	if event != nil {
		t.Fatalf("event = %+v, want nil for ignored types", event)
	}
}

func TestVerifyAndParseRefund(t *testing.T) {
	payload := []byte(`{
		"id": "evt_3",
		"api_version": "2022-11-15",
		"type": "charge.refunded",
		"data": {
			"object": {
				"id": "ch_9",
				"object": "charge",
				"payment_intent": "pi_123",
				"receipt_email": "owner@business.example"
			}
		}
	}`)
	v := NewVerifier(testSecret)

	event, err := v.VerifyAndParse(payload, signPayload(payload, testSecret, time.Now()))
	if err != nil {
		t.Fatalf("VerifyAndParse: %v", err)
	}
	if event.Type != domain.EventChargeRefunded {
		t.Fatalf("type = %q", event.Type)
	}
	if event.RefundedCharge != "ch_9" || event.PaymentIntentID != "pi_123" {
		t.Fatalf("ids = %q/%q", event.RefundedCharge, event.PaymentIntentID)
	}
}
