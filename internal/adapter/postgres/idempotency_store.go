package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IdempotencyStore implements port.IdempotencyStore on a
// processed_payments table, so at-most-once credit application survives
// restarts and multi-instance deployments. MarkProcessed uses ON
// CONFLICT DO NOTHING, making repeated marks a no-op.
type IdempotencyStore struct {
	pool *pgxpool.Pool
}

// NewIdempotencyStore returns a new store instance.
func NewIdempotencyStore(pool *pgxpool.Pool) *IdempotencyStore {
	return &IdempotencyStore{pool: pool}
}

// Processed reports whether the key was already applied.
func (s *IdempotencyStore) Processed(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_payments WHERE payment_key = $1)`, key).
		Scan(&exists)
	return exists, err
}

// MarkProcessed records the key; duplicate marks are silently absorbed.
func (s *IdempotencyStore) MarkProcessed(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO processed_payments (payment_key) VALUES ($1) ON CONFLICT (payment_key) DO NOTHING`, key)
	return err
}
