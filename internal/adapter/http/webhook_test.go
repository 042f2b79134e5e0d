package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"buzzline/internal/core/port"
	"buzzline/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, payments *mocks.MockPaymentUseCase) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(mocks.NewMockCampaignUseCase(t), payments, logger, nil).Router()
}

func TestWebhookMissingSignature(t *testing.T) {
	payments := mocks.NewMockPaymentUseCase(t)
	router := newTestHandler(t, payments)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	payments.AssertNotCalled(t, "ProcessWebhook", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhookInvalidSignature(t *testing.T) {
	payments := mocks.NewMockPaymentUseCase(t)
	payments.On("ProcessWebhook", mock.Anything, []byte("{}"), "bad").
		Return(port.WebhookResult{}, port.ErrInvalidSignature).Once()
	router := newTestHandler(t, payments)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	req.Header.Set("Stripe-Signature", "bad")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestWebhookSuccess(t *testing.T) {
	payments := mocks.NewMockPaymentUseCase(t)
	payments.On("ProcessWebhook", mock.Anything, []byte("{}"), "sig").
		Return(port.WebhookResult{Status: port.ResultProcessed, Message: "payment verified"}, nil).Once()
	router := newTestHandler(t, payments)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	req.Header.Set("Stripe-Signature", "sig")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "payment verified") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestWebhookProcessingError(t *testing.T) {
	payments := mocks.NewMockPaymentUseCase(t)
	payments.On("ProcessWebhook", mock.Anything, mock.Anything, "sig").
		Return(port.WebhookResult{}, errors.New("backend down")).Once()
	router := newTestHandler(t, payments)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	req.Header.Set("Stripe-Signature", "sig")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestWebhookGetNotAllowed(t *testing.T) {
	payments := mocks.NewMockPaymentUseCase(t)
	router := newTestHandler(t, payments)

	req := httptest.NewRequest(http.MethodGet, "/api/stripe/webhook", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
