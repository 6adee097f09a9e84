package proposal

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/approval"
	"github.com/oselabs/cfopilot/internal/proposal"
)

type proposalResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProjectID    uuid.UUID       `json:"project_id"`
	Department   string          `json:"department"`
	AmountCents  int64           `json:"amount_cents"`
	Description  string          `json:"description"`
	Status       proposal.Status `json:"status"`
	PayoutStatus *string         `json:"payout_status,omitempty"`
	RequestedBy  uuid.UUID       `json:"requested_by"`
	ApprovedBy   *uuid.UUID      `json:"approved_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toResponse(p *proposal.Proposal) proposalResponse {
	return proposalResponse{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		Department:   p.Department,
		AmountCents:  p.AmountCents,
		Description:  p.Description,
		Status:       p.Status,
		PayoutStatus: p.PayoutStatus,
		RequestedBy:  p.RequestedBy,
		ApprovedBy:   p.ApprovedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toResponseList(proposals []*proposal.Proposal) []proposalResponse {
	resp := make([]proposalResponse, len(proposals))
	for i, p := range proposals {
		resp[i] = toResponse(p)
	}

	return resp
}

type eventResponse struct {
	ID        uuid.UUID  `json:"id"`
	ActorID   *uuid.UUID `json:"actor_id,omitempty"`
	Level     string     `json:"level"`
	Status    string     `json:"status"`
	Comments  string     `json:"comments"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toEventResponseList(events []*approval.Event) []eventResponse {
	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = eventResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Level:     e.Level,
			Status:    string(e.Status),
			Comments:  e.Comments,
			DecidedAt: e.DecidedAt,
			CreatedAt: e.CreatedAt,
		}
	}

	return resp
}
