package port

import (
	"context"

	"buzzline/internal/core/domain"
)

// CampaignUseCase is the inbound port for campaign submission. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// SubmitCampaign validates the draft, transforms it into the wire
	// payload, forwards it to the backend and records the submission.
	// Validation failures carry a domain.FieldErrors cause.
	SubmitCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Submission, error)

	// GetSubmission returns a previously recorded submission by its
	// local reference ID.
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
}

// CampaignBackend posts campaign wire payloads to the backend campaign
// API. It is an outbound port; the backend owns the contract.
type CampaignBackend interface {
	// CreateCampaign submits the payload and returns the backend's
	// campaign identifier.
	CreateCampaign(ctx context.Context, payload domain.WirePayload) (string, error)
}

// SubmissionRepository persists the local audit trail of accepted
// campaigns.
type SubmissionRepository interface {
	Save(ctx context.Context, sub domain.Submission) error
	// GetByID returns nil without error when no submission matches.
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
}
