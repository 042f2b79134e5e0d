package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"buzzline/internal/core/apperr"
	"buzzline/internal/core/domain"
)

// campaignRequest is the JSON body of a campaign submission. The budget
// block is flat; only the fields matching the campaign type are read.
type campaignRequest struct {
	Type         string    `json:"type"`
	BusinessID   string    `json:"businessId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	ImageURL     string    `json:"imageUrl"`
	ImageUpload  string    `json:"imageUpload"`
	Visibility   string    `json:"visibility"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	EventDate    time.Time `json:"eventDate"`
	Budget       struct {
		CreditsPerCustomer int64 `json:"creditsPerCustomer"`
		InfluencerSpots    int64 `json:"influencerSpots"`
		TotalCredits       int64 `json:"totalCredits"`
		RewardValue        int64 `json:"rewardValue"`
	} `json:"budget"`
}

// toDraft builds the typed draft, selecting the budget shape from the
// declared campaign type. Unknown types are rejected here so the domain
// union stays closed.
func (req campaignRequest) toDraft() (domain.CampaignDraft, error) {
	draft := domain.CampaignDraft{
		Type:         domain.CampaignType(req.Type),
		BusinessID:   req.BusinessID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		ImageURL:     req.ImageURL,
		ImageUpload:  req.ImageUpload,
		Visibility:   domain.Visibility(req.Visibility),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		EventDate:    req.EventDate,
	}

	switch draft.Type {
	case domain.PayPerCustomer:
		draft.Budget = domain.PayPerCustomerBudget{
			CreditsPerCustomer: req.Budget.CreditsPerCustomer,
			InfluencerSpots:    req.Budget.InfluencerSpots,
			TotalCredits:       req.Budget.TotalCredits,
		}
	case domain.MediaEvent:
		draft.Budget = domain.MediaEventBudget{
			InfluencerSpots: req.Budget.InfluencerSpots,
		}
	case domain.Rewards:
		draft.Budget = domain.RewardsBudget{
			RewardValue: req.Budget.RewardValue,
		}
	default:
		return domain.CampaignDraft{}, errors.New("unknown campaign type")
	}
	return draft, nil
}

type submissionResponse struct {
	ID        string             `json:"id"`
	RemoteID  string             `json:"remoteId"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Payload   domain.WirePayload `json:"payload"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toSubmissionResponse(sub *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:        sub.ID,
		RemoteID:  sub.RemoteID,
		Type:      string(sub.Type),
		Title:     sub.Title,
		Payload:   sub.Payload,
		CreatedAt: sub.CreatedAt,
	}
}

// handleSubmitCampaign validates and forwards a campaign draft. Field
// validation failures return 422 with a per-field error map; backend
// unavailability maps to 502.
func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sub, err := h.campaigns.SubmitCampaign(r.Context(), draft)
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// handleGetSubmission returns a recorded submission by reference ID.
func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	sub, err := h.campaigns.GetSubmission(r.Context(), id)
	if err != nil {
		h.writeCampaignError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// writeCampaignError maps the closed error taxonomy onto HTTP statuses.
func (h *Handler) writeCampaignError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		var fields domain.FieldErrors
		if errors.As(err, &fields) {
			h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"fields": fields,
			})
			return
		}
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "validation failed"})
	case apperr.NotFound:
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case apperr.Unauthorized, apperr.Network:
		h.logger.Error("backend error", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "backend unavailable"})
	default:
		h.logger.Error("campaign error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
