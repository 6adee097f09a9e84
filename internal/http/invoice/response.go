package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/invoice"
)

type invoiceResponse struct {
	ID          uuid.UUID      `json:"id"`
	InvoiceRef  string         `json:"invoice_ref"`
	Vendor      string         `json:"vendor"`
	AmountCents int64          `json:"amount_cents"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Status      invoice.Status `json:"status"`
	IsOverdue   bool           `json:"is_overdue"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:          inv.ID,
		InvoiceRef:  inv.InvoiceRef,
		Vendor:      inv.Vendor,
		AmountCents: inv.AmountCents,
		DueDate:     inv.DueDate,
		Status:      inv.Status,
		IsOverdue:   inv.IsOverdue,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}

type overdueResponse struct {
	Count      int               `json:"count"`
	TotalCents int64             `json:"total_cents"`
	Invoices   []invoiceResponse `json:"invoices"`
}

func toOverdueResponse(s *invoice.OverdueSummary) overdueResponse {
	return overdueResponse{
		Count:      s.Count,
		TotalCents: s.TotalCents,
		Invoices:   toResponseList(s.Invoices),
	}
}

type receivablesResponse struct {
	PendingCents int64 `json:"pending_cents"`
}
