// Package backend holds the HTTP client for the platform backend, the
// credit ledger and campaign API shared with the mobile client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"buzzline/internal/core/apperr"
	"buzzline/internal/core/domain"
	"buzzline/internal/core/port"
)

const (
	verifyPaymentPath  = "/api/business/stripe/verify-payment"
	deductCreditsPath  = "/api/business/stripe/deduct-credits"
	createCampaignPath = "/api/business/campaigns"
)

// Client implements port.CampaignBackend and port.PaymentBackend over
// the backend's REST API. Every call shares one request timeout; no
// in-process retries, redelivery comes from the payment provider.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client. The timeout bounds each request
// end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateCampaign posts the wire payload and returns the backend's
// campaign ID.
func (c *Client) CreateCampaign(ctx context.Context, payload domain.WirePayload) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, createCampaignPath, payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// VerifyPayment reports a completed checkout so the backend credits the
// business account. The backend is idempotent on paymentIntentId.
func (c *Client) VerifyPayment(ctx context.Context, req port.VerifyPaymentRequest) error {
	return c.post(ctx, verifyPaymentPath, req, nil)
}

// DeductCredits claws back credits for a refunded charge.
func (c *Client) DeductCredits(ctx context.Context, req port.DeductCreditsRequest) error {
	return c.post(ctx, deductCreditsPath, req, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.Network, "backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classifyStatus(resp.StatusCode, path)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
		return apperr.Wrap(apperr.Server, "decode backend response", err)
	}
	return nil
}

// classifyStatus maps backend status codes onto the closed error
// taxonomy so callers switch on kind instead of probing status codes.
func classifyStatus(status int, path string) error {
	msg := fmt.Sprintf("backend %s returned %d", path, status)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperr.New(apperr.Unauthorized, msg)
	case status == http.StatusNotFound:
		return apperr.New(apperr.NotFound, msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperr.New(apperr.Validation, msg)
	default:
		return apperr.New(apperr.Server, msg)
	}
}
