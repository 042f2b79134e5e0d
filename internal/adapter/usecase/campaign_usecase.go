package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"buzzline/internal/core/apperr"
	"buzzline/internal/core/domain"
	"buzzline/internal/core/port"
	"buzzline/internal/metrics"
)

// CampaignUseCase implements the campaign submission flow: validate the
// draft, transform it into the backend wire format, forward it and keep
// a local audit record.
type CampaignUseCase struct {
	backend port.CampaignBackend
	repo    port.SubmissionRepository
	logger  *slog.Logger
}

// NewCampaignUseCase creates the usecase with its collaborators.
func NewCampaignUseCase(backend port.CampaignBackend, repo port.SubmissionRepository, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{backend: backend, repo: repo, logger: logger}
}

// SubmitCampaign runs the full submission pipeline. Validation failures
// return an apperr.Validation error wrapping domain.FieldErrors so the
// HTTP layer can render per-field messages. The transformer itself
// cannot fail on a validated draft.
func (u *CampaignUseCase) SubmitCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Submission, error) {
	if err := domain.ValidateDraft(draft); err != nil {
		metrics.RecordCampaignSubmission(string(draft.Type), "invalid")
		return nil, apperr.Wrap(apperr.Validation, "campaign draft rejected", err)
	}

	payload := domain.Transform(draft, draft.ResolvedImageURL())

	remoteID, err := u.backend.CreateCampaign(ctx, payload)
	if err != nil {
		metrics.RecordCampaignSubmission(string(draft.Type), "failed")
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	sub := domain.Submission{
		ID:         uuid.NewString(),
		RemoteID:   remoteID,
		BusinessID: draft.BusinessID,
		Type:       draft.Type,
		Title:      payload.Title,
		Payload:    payload,
		CreatedAt:  time.Now().UTC(),
	}
	if err = u.repo.Save(ctx, sub); err != nil {
		// The backend accepted the campaign; losing the audit row is
		// recoverable but must surface for reconciliation.
		u.logger.Error("submission audit save failed",
			slog.String("submission_id", sub.ID),
			slog.String("remote_id", remoteID),
			slog.Any("error", err))
		return nil, fmt.Errorf("save submission: %w", err)
	}

	metrics.RecordCampaignSubmission(string(draft.Type), "accepted")
	u.logger.Info("campaign submitted",
		slog.String("submission_id", sub.ID),
		slog.String("remote_id", remoteID),
		slog.String("type", string(draft.Type)))
	return &sub, nil
}

// GetSubmission looks up a recorded submission by local reference.
func (u *CampaignUseCase) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if sub == nil {
		return nil, apperr.New(apperr.NotFound, "submission not found")
	}
	return sub, nil
}
