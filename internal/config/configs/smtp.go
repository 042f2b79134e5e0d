package configs

// SMTP configures the mail relay used for purchase notifications. When
// Host is empty, mail delivery is disabled and notifications are only
// logged.
type SMTP struct {
	Host string `env:"HOST"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM" envDefault:"no-reply@buzzline.app"`
}

// Enabled reports whether a relay is configured.
func (c SMTP) Enabled() bool { return c.Host != "" }
