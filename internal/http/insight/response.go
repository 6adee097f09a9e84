package insight

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/insight"
)

type merchantSpendResponse struct {
	Merchant   string `json:"merchant"`
	TotalCents int64  `json:"total_cents"`
}

type summaryResponse struct {
	WindowDays      int                     `json:"window_days"`
	TotalCents      int64                   `json:"total_cents"`
	Count           int                     `json:"count"`
	AverageCents    int64                   `json:"average_cents"`
	ByCategoryCents map[string]int64        `json:"by_category_cents"`
	ByStatus        map[string]int          `json:"by_status"`
	TopMerchants    []merchantSpendResponse `json:"top_merchants"`
}

func toSummaryResponse(s *insight.SpendingSummary) summaryResponse {
	merchants := make([]merchantSpendResponse, len(s.TopMerchants))
	for i, m := range s.TopMerchants {
		merchants[i] = merchantSpendResponse{Merchant: m.Merchant, TotalCents: m.TotalCents}
	}

	return summaryResponse{
		WindowDays:      s.WindowDays,
		TotalCents:      s.TotalCents,
		Count:           s.Count,
		AverageCents:    s.AverageCents,
		ByCategoryCents: s.ByCategoryCents,
		ByStatus:        s.ByStatus,
		TopMerchants:    merchants,
	}
}

type forecastResponse struct {
	MonthlyBurnCents        int64 `json:"monthly_burn_cents"`
	ProjectedSpendCents     int64 `json:"projected_spend_cents"`
	PendingReceivablesCents int64 `json:"pending_receivables_cents"`
	NetPositionCents        int64 `json:"net_position_cents"`
}

func toForecastResponse(f *insight.CashflowForecast) forecastResponse {
	return forecastResponse{
		MonthlyBurnCents:        f.MonthlyBurnCents,
		ProjectedSpendCents:     f.ProjectedSpendCents,
		PendingReceivablesCents: f.PendingReceivablesCents,
		NetPositionCents:        f.NetPositionCents,
	}
}

type alertResponse struct {
	ID        uuid.UUID        `json:"id"`
	AlertType string           `json:"alert_type"`
	Severity  insight.Severity `json:"severity"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func toAlertResponseList(alerts []*insight.Alert) []alertResponse {
	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = alertResponse{
			ID:        a.ID,
			AlertType: a.AlertType,
			Severity:  a.Severity,
			Message:   a.Message,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt,
		}
	}

	return resp
}

type chatResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	AgentType string    `json:"agent_type"`
	CreatedAt time.Time `json:"created_at"`
}

func toChatResponse(e *insight.ChatEntry) chatResponse {
	return chatResponse{
		ID:        e.ID,
		Message:   e.Message,
		Response:  e.Response,
		AgentType: e.AgentType,
		CreatedAt: e.CreatedAt,
	}
}

func toChatResponseList(entries []*insight.ChatEntry) []chatResponse {
	resp := make([]chatResponse, len(entries))
	for i, e := range entries {
		resp[i] = toChatResponse(e)
	}

	return resp
}

type policyResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func toPolicyResponse(d *insight.PolicyDocument) policyResponse {
	return policyResponse{
		ID:        d.ID,
		Content:   d.Content,
		Category:  d.Category,
		CreatedAt: d.CreatedAt,
	}
}
