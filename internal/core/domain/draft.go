package domain

import "time"

// CampaignDraft is the business user's in-progress campaign as collected
// by the creation form. Exactly one of ImageURL or ImageUpload must hold
// the final image location before submission.
type CampaignDraft struct {
	Type         CampaignType
	BusinessID   string
	Title        string
	Description  string
	Requirements string
	ImageURL     string
	ImageUpload  string
	Visibility   Visibility

	// StartDate/EndDate bound pay-per-customer and rewards campaigns.
	// EventDate is used instead for media events.
	StartDate time.Time
	EndDate   time.Time
	EventDate time.Time

	Budget CampaignBudget
}

// CampaignBudget is a sealed union with one shape per campaign type, so
// the transformer's type switch covers every representable budget and an
// ill-typed combination cannot be constructed by callers.
type CampaignBudget interface {
	campaignType() CampaignType
}

// PayPerCustomerBudget holds the freely chosen budget of a
// pay-per-customer campaign. TotalCredits must cover at least
// MinCreditsPerInfluencer for every spot.
type PayPerCustomerBudget struct {
	CreditsPerCustomer int64
	InfluencerSpots    int64
	TotalCredits       int64
}

func (PayPerCustomerBudget) campaignType() CampaignType { return PayPerCustomer }

// MediaEventBudget only carries the spot count; total credits and the
// per-spot rate are derived, never user-chosen.
type MediaEventBudget struct {
	InfluencerSpots int64
}

func (MediaEventBudget) campaignType() CampaignType { return MediaEvent }

// RewardsBudget describes an in-kind reward campaign. RewardValue is the
// declared worth of the reward; no credits change hands.
type RewardsBudget struct {
	RewardValue int64
}

func (RewardsBudget) campaignType() CampaignType { return Rewards }

// ResolvedImageURL returns whichever image source the draft carries.
// Validation guarantees exactly one is set.
func (d CampaignDraft) ResolvedImageURL() string {
	if d.ImageURL != "" {
		return d.ImageURL
	}
	return d.ImageUpload
}
