package domain

import "time"

// Pricing rules the backend encodes and the web client must mirror. The
// backend contract belongs to the mobile API and cannot be changed here.
const (
	// MinCreditsPerInfluencer is the per-spot credit floor for
	// pay-per-customer campaigns.
	MinCreditsPerInfluencer = 150

	// MediaEventTotalCredits is the fixed price of every media event.
	MediaEventTotalCredits = 300

	// MediaEventWindow is the fixed duration of a media event, appended
	// to the event date to produce the campaign period end.
	MediaEventWindow = 6 * time.Hour
)

// Transform maps a validated draft and its resolved image URL onto the
// backend wire format. It is pure and total: every output field is set
// for every campaign type, with numeric fields defaulting to zero and
// string fields to the empty string. Type-specific overrides follow the
// backend's pricing rules; user-entered values that conflict with them
// are discarded, never trusted.
func Transform(d CampaignDraft, imageURL string) WirePayload {
	p := WirePayload{
		Title:        d.Title,
		Description:  d.Description,
		PaymentType:  string(d.Type),
		Visibility:   d.Visibility,
		Status:       StatusActive,
		Requirements: d.Requirements,
		PeriodStart:  d.StartDate,
		PeriodEnd:    d.EndDate,
		ImageURL:     imageURL,
	}

	switch b := d.Budget.(type) {
	case PayPerCustomerBudget:
		cpc := b.CreditsPerCustomer
		p.InfluencerSpots = b.InfluencerSpots
		p.TotalCredits = b.TotalCredits
		p.CreditsPerAction = cpc
		p.CreditsPerCustomer = &cpc
	case MediaEventBudget:
		p.InfluencerSpots = b.InfluencerSpots
		p.TotalCredits = MediaEventTotalCredits
		p.CreditsPerAction = perSpotRate(b.InfluencerSpots)
		p.PeriodStart = d.EventDate
		p.PeriodEnd = d.EventDate.Add(MediaEventWindow)
	case RewardsBudget:
		// Reward campaigns are free of credits and always public.
		p.InfluencerSpots = 0
		p.TotalCredits = 0
		p.CreditsPerAction = 0
		p.Visibility = VisibilityPublic
	}

	return p
}

// perSpotRate splits the fixed media-event price across spots, rounding
// down but never below one credit.
func perSpotRate(spots int64) int64 {
	if spots < 1 {
		spots = 1
	}
	rate := MediaEventTotalCredits / spots
	if rate < 1 {
		return 1
	}
	return rate
}
