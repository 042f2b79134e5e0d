package domain

import "time"

// CampaignType identifies one of the three campaign products offered to
// businesses. The type is fixed after the first step of the creation
// flow and drives every budget derivation downstream.
type CampaignType string

const (
	PayPerCustomer CampaignType = "pay_per_customer"
	MediaEvent     CampaignType = "media_event"
	Rewards        CampaignType = "rewards"
)

// Visibility controls whether a campaign is listed publicly or shared by
// invitation only.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// StatusActive is the only status a freshly created campaign may carry.
const StatusActive = "active"

// WirePayload is the exact JSON shape the backend campaign API expects.
// The same contract is consumed by a separate mobile client, so field
// names and presence rules must not diverge. CreditsPerCustomer is only
// present for pay-per-customer campaigns.
type WirePayload struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	PaymentType        string     `json:"paymentType"`
	Visibility         Visibility `json:"visibility"`
	Status             string     `json:"status"`
	Requirements       string     `json:"requirements"`
	InfluencerSpots    int64      `json:"influencerSpots"`
	PeriodStart        time.Time  `json:"periodStart"`
	PeriodEnd          time.Time  `json:"periodEnd"`
	CreditsPerAction   int64      `json:"creditsPerAction"`
	CreditsPerCustomer *int64     `json:"creditsPerCustomer,omitempty"`
	TotalCredits       int64      `json:"totalCredits"`
	ImageURL           string     `json:"imageUrl"`
}

// Submission is the local audit record kept for every campaign accepted
// and forwarded to the backend.
type Submission struct {
	ID         string
	RemoteID   string
	BusinessID string
	Type       CampaignType
	Title      string
	Payload    WirePayload
	CreatedAt  time.Time
}
