package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoiceByRef(ctx context.Context, organizationID uuid.UUID, ref string) (*Invoice, error)
	ListInvoices(ctx context.Context, organizationID uuid.UUID, status *Status) ([]*Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status Status) error
	MarkOverdue(ctx context.Context, organizationID uuid.UUID, asOf time.Time) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	InvoiceRef  string
	Vendor      string
	AmountCents int64
	DueDate     *time.Time
}

func (s *Service) Create(ctx context.Context, actor access.Actor, params CreateParams) (*Invoice, error) {
	if actor.Role.IsEmployee() {
		return nil, ErrForbidden
	}

	if params.InvoiceRef == "" {
		return nil, fmt.Errorf("%w: invoice reference is required", ErrValidation)
	}

	if params.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	inv := &Invoice{
		InvoiceRef:     params.InvoiceRef,
		Vendor:         params.Vendor,
		AmountCents:    params.AmountCents,
		DueDate:        params.DueDate,
		Status:         StatusPending,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context, actor access.Actor, status *Status) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, actor.OrganizationID, status)
}

// MarkPaidByReference settles the invoice matching the reference. Satisfies
// the transaction service's InvoiceMarker, so a manual entry that names an
// invoice closes it out.
func (s *Service) MarkPaidByReference(ctx context.Context, organizationID uuid.UUID, invoiceRef string) error {
	inv, err := s.repo.GetInvoiceByRef(ctx, organizationID, invoiceRef)
	if err != nil {
		return err
	}

	if inv.Status == StatusPaid {
		return nil
	}

	return s.repo.UpdateInvoiceStatus(ctx, inv.ID, StatusPaid)
}

// PendingReceivables totals unpaid invoices for the organization.
func (s *Service) PendingReceivables(ctx context.Context, actor access.Actor) (int64, error) {
	pending := StatusPending

	invoices, err := s.repo.ListInvoices(ctx, actor.OrganizationID, &pending)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, inv := range invoices {
		total += inv.AmountCents
	}

	return total, nil
}

// Overdue flags past-due invoices and returns the current overdue book.
func (s *Service) Overdue(ctx context.Context, actor access.Actor) (*OverdueSummary, error) {
	if _, err := s.repo.MarkOverdue(ctx, actor.OrganizationID, time.Now()); err != nil {
		return nil, err
	}

	pending := StatusPending

	invoices, err := s.repo.ListInvoices(ctx, actor.OrganizationID, &pending)
	if err != nil {
		return nil, err
	}

	summary := new(OverdueSummary)

	for _, inv := range invoices {
		if !inv.IsOverdue {
			continue
		}

		summary.Count++
		summary.TotalCents += inv.AmountCents
		summary.Invoices = append(summary.Invoices, inv)
	}

	return summary, nil
}
