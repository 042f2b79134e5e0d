package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buzzline/internal/core/domain"
)

// SubmissionRepository implements port.SubmissionRepository using
// pgxpool for PostgreSQL. The wire payload is stored as JSONB so the
// audit trail captures exactly what was sent to the backend.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository returns a new repository instance.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Save inserts one submission record.
func (r *SubmissionRepository) Save(ctx context.Context, sub domain.Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO campaign_submissions (id, remote_id, business_id, campaign_type, title, payload, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		sub.ID, sub.RemoteID, sub.BusinessID, string(sub.Type), sub.Title, payload, sub.CreatedAt)
	return err
}

// GetByID returns a submission by local reference, or nil when unknown.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var (
		sub          domain.Submission
		campaignType string
		payload      []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, remote_id, business_id, campaign_type, title, payload, created_at
		 FROM campaign_submissions WHERE id = $1`, id).
		Scan(&sub.ID, &sub.RemoteID, &sub.BusinessID, &campaignType, &sub.Title, &payload, &sub.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sub.Type = domain.CampaignType(campaignType)
	if err = json.Unmarshal(payload, &sub.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &sub, nil
}
