package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"buzzline/internal/core/port"
)

const (
	queueDepth   = 64
	maxAttempts  = 3
	initialDelay = time.Second
)

// Log is one delivery attempt outcome for the email audit trail.
type Log struct {
	PaymentIntentID string
	Recipient       string
	Subject         string
	Status          string
	ErrorMessage    string
}

// Delivery outcome statuses.
const (
	LogStatusSent   = "sent"
	LogStatusFailed = "failed"
)

// LogStore persists delivery outcomes. A nil store disables the trail.
type LogStore interface {
	SaveLog(ctx context.Context, entry Log) error
}

type job struct {
	to              string
	subject         string
	body            string
	paymentIntentID string
}

// Queue implements port.MailQueue on a buffered channel drained by one
// worker. Enqueue never blocks: when the buffer is full the job is
// dropped with a log line, since mail must never hold up a webhook
// response.
type Queue struct {
	sender Sender
	store  LogStore
	logger *slog.Logger
	jobs   chan job
}

// NewQueue creates a queue; call Start to begin draining it.
func NewQueue(sender Sender, store LogStore, logger *slog.Logger) *Queue {
	return &Queue{
		sender: sender,
		store:  store,
		logger: logger,
		jobs:   make(chan job, queueDepth),
	}
}

// Start drains the queue until ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case j := <-q.jobs:
				q.deliver(ctx, j)
			}
		}
	}()
}

// EnqueueConfirmation queues a purchase confirmation.
func (q *Queue) EnqueueConfirmation(mail port.ConfirmationMail) {
	q.enqueue(job{
		to:              mail.To,
		subject:         "Your credit purchase is confirmed",
		body:            confirmationBody(mail),
		paymentIntentID: mail.PaymentIntentID,
	})
}

// EnqueueFailureNotice queues a payment-failure notice.
func (q *Queue) EnqueueFailureNotice(mail port.FailureMail) {
	q.enqueue(job{
		to:              mail.To,
		subject:         "Your payment could not be completed",
		body:            failureBody(mail),
		paymentIntentID: mail.PaymentIntentID,
	})
}

func (q *Queue) enqueue(j job) {
	select {
	case q.jobs <- j:
	default:
		q.logger.Warn("mail queue full, dropping message",
			slog.String("to", j.to),
			slog.String("subject", j.subject))
	}
}

// deliver retries with exponential backoff before recording the outcome.
func (q *Queue) deliver(ctx context.Context, j job) {
	delay := initialDelay
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = q.sender.Send(j.to, j.subject, j.body); err == nil {
			break
		}
		if attempt < maxAttempts {
			q.logger.Warn("mail delivery failed, retrying",
				slog.Int("attempt", attempt),
				slog.String("to", j.to),
				slog.Any("error", err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	entry := Log{
		PaymentIntentID: j.paymentIntentID,
		Recipient:       j.to,
		Subject:         j.subject,
		Status:          LogStatusSent,
	}
	if err != nil {
		q.logger.Error("mail delivery abandoned",
			slog.String("to", j.to),
			slog.Any("error", err))
		entry.Status = LogStatusFailed
		entry.ErrorMessage = err.Error()
	}
	if q.store != nil {
		if serr := q.store.SaveLog(ctx, entry); serr != nil {
			q.logger.Error("failed to save email log", slog.Any("error", serr))
		}
	}
}

func confirmationBody(mail port.ConfirmationMail) string {
	return fmt.Sprintf(
		"Hello!\n\nYour purchase of %d credits is confirmed.\nPayment reference: %s\n\nThank you for using Buzzline.",
		mail.Credits, mail.PaymentIntentID)
}

func failureBody(mail port.FailureMail) string {
	reason := mail.Reason
	if reason == "" {
		reason = "the payment was declined"
	}
	return fmt.Sprintf(
		"Hello!\n\nYour credit purchase could not be completed: %s.\nPayment reference: %s\n\nPlease try again or use a different payment method.",
		reason, mail.PaymentIntentID)
}
