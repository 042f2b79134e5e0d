package configs

// Stripe configures webhook signature verification. The secret is the
// signing secret of the configured webhook endpoint, not an API key.
type Stripe struct {
	// WebhookSecret verifies the Stripe-Signature header. Required.
	WebhookSecret string `env:"WEBHOOK_SECRET,notEmpty"`
}
