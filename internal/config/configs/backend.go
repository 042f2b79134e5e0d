package configs

import "time"

// Backend configures the platform backend client (campaign API and
// credit ledger).
type Backend struct {
	// URL is the backend base URL without a trailing slash.
	URL string `env:"URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each backend request end to end.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
