package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"buzzline/internal/adapter/email"
)

// EmailLogStore persists mail delivery outcomes for the audit trail.
type EmailLogStore struct {
	pool *pgxpool.Pool
}

// NewEmailLogStore returns a new store instance.
func NewEmailLogStore(pool *pgxpool.Pool) *EmailLogStore {
	return &EmailLogStore{pool: pool}
}

// SaveLog inserts one delivery outcome.
func (s *EmailLogStore) SaveLog(ctx context.Context, entry email.Log) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO email_log (payment_intent_id, recipient, subject, status, error_message, created_at)
		 VALUES ($1,$2,$3,$4,$5,now())`,
		entry.PaymentIntentID, entry.Recipient, entry.Subject, entry.Status, entry.ErrorMessage)
	return err
}
