package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Draft bounds enforced before transformation.
const (
	titleMinLen        = 3
	titleMaxLen        = 120
	descriptionMinLen  = 10
	descriptionMaxLen  = 5000
	requirementsMinLen = 10
	requirementsMaxLen = 2000

	minCampaignDays = 1
	maxCampaignDays = 365

	maxPayPerCustomerSpots = 1000
	maxCreditsPerCustomer  = 1000
	maxMediaEventSpots     = 50
	maxEventLeadTime       = 365 * 24 * time.Hour
)

// FieldErrors maps draft field names to human-readable messages. It is
// returned whole so the form layer can surface every problem at once.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid draft: " + strings.Join(parts, "; ")
}

// ValidateDraft checks every submission rule against the draft and
// returns nil or a FieldErrors covering all violations. A draft that
// passes validation is guaranteed safe input for Transform.
func ValidateDraft(d CampaignDraft) error {
	return validateDraftAt(d, time.Now())
}

func validateDraftAt(d CampaignDraft, now time.Time) error {
	fe := FieldErrors{}

	checkLen(fe, "title", d.Title, titleMinLen, titleMaxLen)
	checkLen(fe, "description", d.Description, descriptionMinLen, descriptionMaxLen)
	checkLen(fe, "requirements", d.Requirements, requirementsMinLen, requirementsMaxLen)

	switch {
	case d.ImageURL == "" && d.ImageUpload == "":
		fe["image"] = "an image URL or an uploaded image is required"
	case d.ImageURL != "" && d.ImageUpload != "":
		fe["image"] = "provide either an image URL or an uploaded image, not both"
	}

	if d.Visibility != VisibilityPublic && d.Visibility != VisibilityPrivate {
		fe["visibility"] = "visibility must be public or private"
	}

	switch b := d.Budget.(type) {
	case PayPerCustomerBudget:
		if d.Type != PayPerCustomer {
			fe["budget"] = "budget shape does not match campaign type"
		}
		validateDateRange(fe, d.StartDate, d.EndDate)
		if b.InfluencerSpots < 1 || b.InfluencerSpots > maxPayPerCustomerSpots {
			fe["influencerSpots"] = fmt.Sprintf("influencer spots must be between 1 and %d", maxPayPerCustomerSpots)
		}
		if b.CreditsPerCustomer < 1 || b.CreditsPerCustomer > maxCreditsPerCustomer {
			fe["creditsPerCustomer"] = fmt.Sprintf("credits per customer must be between 1 and %d", maxCreditsPerCustomer)
		}
		if min := b.InfluencerSpots * MinCreditsPerInfluencer; b.TotalCredits < min {
			fe["totalCredits"] = fmt.Sprintf("total credits must be at least %d (%d per influencer)", min, MinCreditsPerInfluencer)
		}
	case MediaEventBudget:
		if d.Type != MediaEvent {
			fe["budget"] = "budget shape does not match campaign type"
		}
		if b.InfluencerSpots < 1 || b.InfluencerSpots > maxMediaEventSpots {
			fe["influencerSpots"] = fmt.Sprintf("influencer spots must be between 1 and %d", maxMediaEventSpots)
		}
		if !d.EventDate.After(now) {
			fe["eventDate"] = "event date must be in the future"
		} else if d.EventDate.Sub(now) > maxEventLeadTime {
			fe["eventDate"] = "event date must be within one year"
		}
	case RewardsBudget:
		if d.Type != Rewards {
			fe["budget"] = "budget shape does not match campaign type"
		}
		validateDateRange(fe, d.StartDate, d.EndDate)
		if b.RewardValue <= 0 {
			fe["rewardValue"] = "reward value must be greater than zero"
		}
	default:
		fe["budget"] = "budget is required"
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}

func checkLen(fe FieldErrors, field, value string, min, max int) {
	n := len(strings.TrimSpace(value))
	switch {
	case n < min:
		fe[field] = fmt.Sprintf("%s must be at least %d characters", field, min)
	case n > max:
		fe[field] = fmt.Sprintf("%s must be at most %d characters", field, max)
	}
}

func validateDateRange(fe FieldErrors, start, end time.Time) {
	if start.IsZero() || end.IsZero() {
		fe["dates"] = "start and end dates are required"
		return
	}
	if !end.After(start) {
		fe["dates"] = "end date must be after start date"
		return
	}
	days := end.Sub(start).Hours() / 24
	if days < minCampaignDays || days > maxCampaignDays {
		fe["dates"] = fmt.Sprintf("campaign duration must be between %d and %d days", minCampaignDays, maxCampaignDays)
	}
}
