package email

import "log/slog"

// LogSender records messages in the log instead of delivering them.
// Used when no SMTP relay is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender writing to the given logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and reports success.
func (s *LogSender) Send(to, subject, _ string) error {
	s.logger.Info("mail delivery skipped, no relay configured",
		slog.String("to", to),
		slog.String("subject", subject))
	return nil
}
