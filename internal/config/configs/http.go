package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. SubmitRate and SubmitBurst bound
// the campaign submission endpoint; webhooks are never limited.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// SubmitRate is the sustained campaign submissions per second.
	SubmitRate float64 `env:"SUBMIT_RATE" envDefault:"5"`

	// SubmitBurst is the submission burst allowance.
	SubmitBurst int `env:"SUBMIT_BURST" envDefault:"10"`
}
