package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/approval"
	"github.com/oselabs/cfopilot/internal/transaction"
)

type fixture struct {
	repo     *transaction.MockRepository
	src      *access.MockAssignmentSource
	cards    *transaction.MockCardLinker
	invoices *transaction.MockInvoiceMarker
	svc      *transaction.Service
	orgID    uuid.UUID
	p1       uuid.UUID
	p2       uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := transaction.NewMockRepository(ctrl)
	src := access.NewMockAssignmentSource(ctrl)
	cards := transaction.NewMockCardLinker(ctrl)
	invoices := transaction.NewMockInvoiceMarker(ctrl)

	return &fixture{
		repo:     repo,
		src:      src,
		cards:    cards,
		invoices: invoices,
		svc:      transaction.NewService(repo, access.NewChecker(src, false), cards, invoices),
		orgID:    uuid.New(),
		p1:       uuid.New(),
		p2:       uuid.New(),
	}
}

func (f *fixture) actor(role access.Role) access.Actor {
	return access.Actor{ID: uuid.New(), OrganizationID: f.orgID, Role: role}
}

func (f *fixture) assign(userID uuid.UUID, projects ...uuid.UUID) {
	set := make(map[uuid.UUID]struct{}, len(projects))
	for _, p := range projects {
		set[p] = struct{}{}
	}

	f.src.EXPECT().
		AssignedProjects(gomock.Any(), userID, f.orgID).
		Return(set, nil).
		AnyTimes()
}

func TestService_CreateManual(t *testing.T) {
	f := newFixture(t)
	emp := f.actor(access.RoleEmployee)
	f.assign(emp.ID, f.p1)

	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	got, err := f.svc.CreateManual(context.Background(), emp, transaction.CreateParams{
		AmountCents: 4_250,
		Date:        time.Now(),
		Category:    "Travel",
		Merchant:    "Amtrak",
		ProjectID:   &f.p1,
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.StatusPending, got.Status)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "manual", got.PaymentMethod)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, emp.ID, *got.CreatedBy)
}

func TestService_CreateManual_UnassignedProject(t *testing.T) {
	f := newFixture(t)
	emp := f.actor(access.RoleEmployee)
	f.assign(emp.ID, f.p1)

	_, err := f.svc.CreateManual(context.Background(), emp, transaction.CreateParams{
		AmountCents: 100,
		Date:        time.Now(),
		ProjectID:   &f.p2,
	})
	assert.ErrorIs(t, err, transaction.ErrForbidden)
}

func TestService_CreateManual_ZeroAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateManual(context.Background(), f.actor(access.RoleAdmin), transaction.CreateParams{
		Date: time.Now(),
	})
	assert.ErrorIs(t, err, transaction.ErrValidation)
}

func TestService_CreateManual_LinksCardAndInvoice(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)
	cardID := uuid.New()

	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	f.cards.EXPECT().
		RecordCardTransaction(gomock.Any(), cardID, gomock.Any(), int64(9_900), "Figma", "Software", "pending").
		Return(nil)
	f.invoices.EXPECT().
		MarkPaidByReference(gomock.Any(), f.orgID, "INV-0042").
		Return(nil)

	_, err := f.svc.CreateManual(context.Background(), admin, transaction.CreateParams{
		AmountCents: 9_900,
		Date:        time.Now(),
		Category:    "Software",
		Merchant:    "Figma",
		CardID:      &cardID,
		InvoiceRef:  "INV-0042",
	})
	require.NoError(t, err)
}

func TestService_CreateManual_SideEffectFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)
	cardID := uuid.New()

	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	f.cards.EXPECT().
		RecordCardTransaction(gomock.Any(), cardID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("card not found"))

	got, err := f.svc.CreateManual(context.Background(), admin, transaction.CreateParams{
		AmountCents: 500,
		Date:        time.Now(),
		CardID:      &cardID,
	})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestService_List_EmployeeSeesOwnRows(t *testing.T) {
	f := newFixture(t)
	emp := f.actor(access.RoleEmployee)
	f.assign(emp.ID, f.p1)

	f.repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Equal(t, f.orgID, filter.OrganizationID)
			assert.Equal(t, []uuid.UUID{f.p1}, filter.ProjectIDs)
			require.NotNil(t, filter.CreatedBy)
			assert.Equal(t, emp.ID, *filter.CreatedBy)
			return nil, nil
		})

	_, err := f.svc.List(context.Background(), emp, transaction.ListFilter{})
	require.NoError(t, err)
}

func TestService_List_AdminUnscoped(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)

	f.repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Nil(t, filter.ProjectIDs)
			assert.Nil(t, filter.CreatedBy)
			return nil, nil
		})

	_, err := f.svc.List(context.Background(), admin, transaction.ListFilter{})
	require.NoError(t, err)
}

func TestService_PendingApprovals_ManagerWithoutProjects(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)
	f.assign(mgr.ID) // no projects

	got, err := f.svc.PendingApprovals(context.Background(), mgr)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_PendingApprovals_EmployeeForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PendingApprovals(context.Background(), f.actor(access.RoleEmployee))
	assert.ErrorIs(t, err, transaction.ErrForbidden)
}

func TestService_Decide_Approve(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)
	f.assign(mgr.ID, f.p1)

	txID := uuid.New()
	f.repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&transaction.Transaction{ID: txID, ProjectID: &f.p1, Status: transaction.StatusPending, OrganizationID: f.orgID}, nil)
	f.repo.EXPECT().
		DecideTransaction(gomock.Any(), txID, transaction.StatusApproved, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ transaction.Status, event *approval.Event) error {
			assert.Equal(t, approval.SubjectTransaction, event.SubjectType)
			assert.Equal(t, id, event.SubjectID)
			assert.Equal(t, approval.StatusApproved, event.Status)
			require.NotNil(t, event.ActorID)
			assert.Equal(t, mgr.ID, *event.ActorID)
			return nil
		})

	err := f.svc.Decide(context.Background(), mgr, txID, true, "receipts attached")
	require.NoError(t, err)
}

func TestService_Decide_NoProjectAdminOnly(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)

	txID := uuid.New()
	f.repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&transaction.Transaction{ID: txID, Status: transaction.StatusPending, OrganizationID: f.orgID}, nil)

	err := f.svc.Decide(context.Background(), mgr, txID, false, "")
	assert.ErrorIs(t, err, transaction.ErrForbidden)
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)

	txID := uuid.New()
	f.repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&transaction.Transaction{ID: txID, ProjectID: &f.p1, Status: transaction.StatusApproved, OrganizationID: f.orgID}, nil)
	f.repo.EXPECT().
		DecideTransaction(gomock.Any(), txID, transaction.StatusRejected, gomock.Any()).
		Return(transaction.ErrAlreadyDecided)

	err := f.svc.Decide(context.Background(), admin, txID, false, "")
	assert.ErrorIs(t, err, transaction.ErrAlreadyDecided)
}

func TestService_Upsert_RequiresExternalID(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Upsert(context.Background(), &transaction.Transaction{AmountCents: 100})
	assert.ErrorIs(t, err, transaction.ErrValidation)
}
