package budget

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/budget"
)

type budgetResponse struct {
	ID             uuid.UUID  `json:"id"`
	Department     string     `json:"department"`
	Category       string     `json:"category"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	Quarter        string     `json:"quarter"`
	Year           int        `json:"year"`
	ApprovedCents  int64      `json:"approved_cents"`
	SpentCents     int64      `json:"spent_cents"`
	RemainingCents int64      `json:"remaining_cents"`
	UsagePercent   float64    `json:"usage_percent"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toResponse(b *budget.Budget) budgetResponse {
	return budgetResponse{
		ID:             b.ID,
		Department:     b.Department,
		Category:       b.Category,
		ProjectID:      b.ProjectID,
		Quarter:        b.Quarter,
		Year:           b.Year,
		ApprovedCents:  b.ApprovedCents,
		SpentCents:     b.SpentCents,
		RemainingCents: b.RemainingCents(),
		UsagePercent:   b.UsagePercent(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toResponseList(budgets []*budget.Budget) []budgetResponse {
	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = toResponse(b)
	}

	return resp
}

type usageResponse struct {
	TotalApprovedCents  int64   `json:"total_approved_cents"`
	TotalSpentCents     int64   `json:"total_spent_cents"`
	TotalRemainingCents int64   `json:"total_remaining_cents"`
	OverallUsagePercent float64 `json:"overall_usage_percent"`
	Count               int     `json:"count"`
}

func toUsageResponse(u *budget.Usage) usageResponse {
	return usageResponse{
		TotalApprovedCents:  u.TotalApprovedCents,
		TotalSpentCents:     u.TotalSpentCents,
		TotalRemainingCents: u.TotalRemainingCents,
		OverallUsagePercent: u.OverallUsagePercent,
		Count:               u.Count,
	}
}

type varianceResponse struct {
	Department      string  `json:"department"`
	Category        string  `json:"category"`
	ApprovedCents   int64   `json:"approved_cents"`
	SpentCents      int64   `json:"spent_cents"`
	VariancePercent float64 `json:"variance_percent"`
	Status          string  `json:"status"`
	Quarter         string  `json:"quarter"`
	Year            int     `json:"year"`
}

func toVarianceResponseList(report []budget.Variance) []varianceResponse {
	resp := make([]varianceResponse, len(report))
	for i, v := range report {
		resp[i] = varianceResponse{
			Department:      v.Department,
			Category:        v.Category,
			ApprovedCents:   v.ApprovedCents,
			SpentCents:      v.SpentCents,
			VariancePercent: v.VariancePercent,
			Status:          v.Status,
			Quarter:         v.Quarter,
			Year:            v.Year,
		}
	}

	return resp
}
