package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("invoice not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid invoice")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusVoid    Status = "void"
)

// Invoice is a receivable owed to the organization. InvoiceRef is the
// human-facing number ("INV-0042") and is unique per organization.
type Invoice struct {
	ID             uuid.UUID
	InvoiceRef     string
	Vendor         string
	AmountCents    int64
	DueDate        *time.Time
	Status         Status
	IsOverdue      bool
	OrganizationID uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OverdueSummary aggregates unpaid invoices past their due date.
type OverdueSummary struct {
	Count      int
	TotalCents int64
	Invoices   []*Invoice
}
