package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/invoice"
)

func newService(t *testing.T) (*invoice.MockRepository, *invoice.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := invoice.NewMockRepository(ctrl)

	return repo, invoice.NewService(repo)
}

func TestService_Create(t *testing.T) {
	repo, svc := newService(t)
	mgr := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleManager}

	repo.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			inv.ID = uuid.New()
			return nil
		})

	got, err := svc.Create(context.Background(), mgr, invoice.CreateParams{
		InvoiceRef:  "INV-0042",
		Vendor:      "Acme Consulting",
		AmountCents: 125_000,
	})
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPending, got.Status)
	assert.Equal(t, mgr.OrganizationID, got.OrganizationID)
}

func TestService_Create_EmployeeForbidden(t *testing.T) {
	_, svc := newService(t)
	emp := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleEmployee}

	_, err := svc.Create(context.Background(), emp, invoice.CreateParams{InvoiceRef: "INV-1", AmountCents: 100})
	assert.ErrorIs(t, err, invoice.ErrForbidden)
}

func TestService_MarkPaidByReference(t *testing.T) {
	repo, svc := newService(t)
	orgID := uuid.New()
	invID := uuid.New()

	repo.EXPECT().
		GetInvoiceByRef(gomock.Any(), orgID, "INV-0042").
		Return(&invoice.Invoice{ID: invID, Status: invoice.StatusPending, OrganizationID: orgID}, nil)
	repo.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), invID, invoice.StatusPaid).
		Return(nil)

	err := svc.MarkPaidByReference(context.Background(), orgID, "INV-0042")
	require.NoError(t, err)
}

func TestService_MarkPaidByReference_AlreadyPaid(t *testing.T) {
	repo, svc := newService(t)
	orgID := uuid.New()

	repo.EXPECT().
		GetInvoiceByRef(gomock.Any(), orgID, "INV-0042").
		Return(&invoice.Invoice{ID: uuid.New(), Status: invoice.StatusPaid, OrganizationID: orgID}, nil)

	// No UpdateInvoiceStatus expectation: a paid invoice stays untouched.
	err := svc.MarkPaidByReference(context.Background(), orgID, "INV-0042")
	require.NoError(t, err)
}

func TestService_PendingReceivables(t *testing.T) {
	repo, svc := newService(t)
	admin := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin}

	pending := invoice.StatusPending
	repo.EXPECT().
		ListInvoices(gomock.Any(), admin.OrganizationID, &pending).
		Return([]*invoice.Invoice{
			{AmountCents: 100_000},
			{AmountCents: 25_500},
		}, nil)

	total, err := svc.PendingReceivables(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(125_500), total)
}

func TestService_Overdue(t *testing.T) {
	repo, svc := newService(t)
	admin := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin}

	due := time.Now().AddDate(0, 0, -10)
	repo.EXPECT().
		MarkOverdue(gomock.Any(), admin.OrganizationID, gomock.Any()).
		Return(int64(1), nil)

	pending := invoice.StatusPending
	repo.EXPECT().
		ListInvoices(gomock.Any(), admin.OrganizationID, &pending).
		Return([]*invoice.Invoice{
			{AmountCents: 50_000, DueDate: &due, IsOverdue: true},
			{AmountCents: 10_000},
		}, nil)

	summary, err := svc.Overdue(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, int64(50_000), summary.TotalCents)
}
