package domain

import (
	"testing"
	"time"
)

func datePair() (time.Time, time.Time) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestTransformPayPerCustomer(t *testing.T) {
	start, end := datePair()
	draft := CampaignDraft{
		Type:         PayPerCustomer,
		Title:        "Autumn push",
		Description:  "Bring customers to our flagship store",
		Requirements: "Post at least two stories tagging us",
		Visibility:   VisibilityPrivate,
		StartDate:    start,
		EndDate:      end,
		Budget: PayPerCustomerBudget{
			CreditsPerCustomer: 50,
			InfluencerSpots:    100,
			TotalCredits:       5000,
		},
	}

	p := Transform(draft, "https://cdn.example.com/img.png")

	if p.PaymentType != "pay_per_customer" {
		t.Fatalf("paymentType = %q", p.PaymentType)
	}
	if p.TotalCredits != 5000 || p.InfluencerSpots != 100 || p.CreditsPerAction != 50 {
		t.Fatalf("budget fields = %d/%d/%d", p.TotalCredits, p.InfluencerSpots, p.CreditsPerAction)
	}
	if p.CreditsPerCustomer == nil || *p.CreditsPerCustomer != 50 {
		t.Fatalf("creditsPerCustomer = %v, want 50", p.CreditsPerCustomer)
	}
	if p.Visibility != VisibilityPrivate {
		t.Fatalf("visibility = %q, user choice must be kept", p.Visibility)
	}
	if !p.PeriodStart.Equal(start) || !p.PeriodEnd.Equal(end) {
		t.Fatalf("period = %v..%v", p.PeriodStart, p.PeriodEnd)
	}
	if p.Status != StatusActive {
		t.Fatalf("status = %q", p.Status)
	}
	if p.ImageURL != "https://cdn.example.com/img.png" {
		t.Fatalf("imageUrl = %q", p.ImageURL)
	}
}

func TestTransformMediaEventPricing(t *testing.T) {
	cases := []struct {
		spots    int64
		wantRate int64
	}{
		{1, 300},
		{5, 60},
		{7, 42},
		{49, 6},
		{50, 6},
	}
	event := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)

	for _, tc := range cases {
		draft := CampaignDraft{
			Type:       MediaEvent,
			Visibility: VisibilityPublic,
			EventDate:  event,
			Budget:     MediaEventBudget{InfluencerSpots: tc.spots},
		}
		p := Transform(draft, "img")

		if p.TotalCredits != MediaEventTotalCredits {
			t.Fatalf("spots=%d: totalCredits = %d, want %d", tc.spots, p.TotalCredits, MediaEventTotalCredits)
		}
		if p.CreditsPerAction != tc.wantRate {
			t.Fatalf("spots=%d: creditsPerAction = %d, want %d", tc.spots, p.CreditsPerAction, tc.wantRate)
		}
		if p.InfluencerSpots != tc.spots {
			t.Fatalf("spots=%d: influencerSpots = %d", tc.spots, p.InfluencerSpots)
		}
		if p.CreditsPerCustomer != nil {
			t.Fatalf("spots=%d: creditsPerCustomer must be absent for media events", tc.spots)
		}
	}
}

func TestTransformMediaEventPeriod(t *testing.T) {
	event := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)
	draft := CampaignDraft{
		Type:       MediaEvent,
		Visibility: VisibilityPublic,
		EventDate:  event,
		// Date-range fields must be ignored for media events.
		StartDate: event.AddDate(0, -1, 0),
		EndDate:   event.AddDate(0, 1, 0),
		Budget:    MediaEventBudget{InfluencerSpots: 10},
	}

	p := Transform(draft, "img")
	if !p.PeriodStart.Equal(event) {
		t.Fatalf("periodStart = %v, want event date", p.PeriodStart)
	}
	if !p.PeriodEnd.Equal(event.Add(6 * time.Hour)) {
		t.Fatalf("periodEnd = %v, want event date + 6h", p.PeriodEnd)
	}
}

func TestTransformRewardsOverrides(t *testing.T) {
	start, end := datePair()
	draft := CampaignDraft{
		Type:       Rewards,
		Visibility: VisibilityPrivate, // must be forced to public
		StartDate:  start,
		EndDate:    end,
		Budget:     RewardsBudget{RewardValue: 25},
	}

	p := Transform(draft, "img")
	if p.TotalCredits != 0 || p.InfluencerSpots != 0 || p.CreditsPerAction != 0 {
		t.Fatalf("rewards credit fields must all be zero, got %d/%d/%d",
			p.TotalCredits, p.InfluencerSpots, p.CreditsPerAction)
	}
	if p.Visibility != VisibilityPublic {
		t.Fatalf("visibility = %q, want forced public", p.Visibility)
	}
	if p.CreditsPerCustomer != nil {
		t.Fatal("creditsPerCustomer must be absent for rewards")
	}
	if p.PaymentType != "rewards" {
		t.Fatalf("paymentType = %q", p.PaymentType)
	}
}

// TestTransformTotality checks every output field is populated for each
// campaign type: numeric fields may be zero but never unset, string
// fields carry the draft values.
func TestTransformTotality(t *testing.T) {
	start, end := datePair()
	base := CampaignDraft{
		Title:        "T",
		Description:  "D",
		Requirements: "R",
		Visibility:   VisibilityPublic,
		StartDate:    start,
		EndDate:      end,
		EventDate:    start,
	}

	budgets := map[CampaignType]CampaignBudget{
		PayPerCustomer: PayPerCustomerBudget{CreditsPerCustomer: 1, InfluencerSpots: 1, TotalCredits: 150},
		MediaEvent:     MediaEventBudget{InfluencerSpots: 3},
		Rewards:        RewardsBudget{RewardValue: 10},
	}

	for typ, budget := range budgets {
		draft := base
		draft.Type = typ
		draft.Budget = budget
		p := Transform(draft, "img")

		if p.Title != "T" || p.Description != "D" || p.Requirements != "R" {
			t.Fatalf("%s: text fields not carried over", typ)
		}
		if p.PaymentType == "" || p.Status == "" || p.Visibility == "" || p.ImageURL == "" {
			t.Fatalf("%s: required string field left empty", typ)
		}
		if p.PeriodStart.IsZero() || p.PeriodEnd.IsZero() {
			t.Fatalf("%s: period not set", typ)
		}
	}
}
