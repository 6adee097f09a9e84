package payments_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/payments"
	"github.com/oselabs/cfopilot/internal/transaction"
)

type fixture struct {
	api    *payments.MockAPI
	repo   *payments.MockRepository
	writer *payments.MockTransactionWriter
	admin  access.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &fixture{
		api:    payments.NewMockAPI(ctrl),
		repo:   payments.NewMockRepository(ctrl),
		writer: payments.NewMockTransactionWriter(ctrl),
		admin:  access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin},
	}
}

func (f *fixture) service(autoPayout bool) *payments.Service {
	return payments.NewService(f.api, f.repo, f.writer, autoPayout)
}

func strPtr(s string) *string { return &s }

func (f *fixture) payableProposal(id uuid.UUID) *payments.DisbursableProposal {
	return &payments.DisbursableProposal{
		ID:              id,
		AmountCents:     50_000,
		Description:     "Conference travel",
		Status:          "approved",
		RequestedBy:     uuid.New(),
		StripeAccountID: strPtr("acct_123"),
		OrganizationID:  f.admin.OrganizationID,
		ProjectID:       uuid.New(),
	}
}

func TestService_SyncRecent(t *testing.T) {
	f := newFixture(t)
	svc := f.service(false)

	f.api.EXPECT().
		ListCharges(gomock.Any(), gomock.Any()).
		Return([]*payments.Charge{
			{ID: "ch_1", AmountCents: 10_000, Currency: "usd", Created: time.Now(), Status: "succeeded"},
			{ID: "ch_2", AmountCents: 5_000, Currency: "usd", Created: time.Now(), Status: "succeeded", Refunded: true},
		}, nil)
	f.api.EXPECT().
		ListPayouts(gomock.Any(), gomock.Any()).
		Return([]*payments.Payout{
			{ID: "po_1", AmountCents: 20_000, Currency: "usd", Created: time.Now(), Status: "paid"},
		}, nil)

	var statuses []transaction.Status
	f.writer.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			require.NotNil(t, tx.ExternalID)
			statuses = append(statuses, tx.Status)
			return nil
		}).
		Times(3)

	result, err := svc.SyncRecent(context.Background(), f.admin, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Charges)
	assert.Equal(t, 1, result.Payouts)
	assert.Equal(t, []transaction.Status{
		transaction.StatusSucceeded,
		transaction.StatusRefunded,
		transaction.StatusPaid,
	}, statuses)
}

func TestService_SyncRecent_ManagerForbidden(t *testing.T) {
	f := newFixture(t)
	svc := f.service(false)

	mgr := access.Actor{ID: uuid.New(), OrganizationID: f.admin.OrganizationID, Role: access.RoleManager}

	_, err := svc.SyncRecent(context.Background(), mgr, 30)
	assert.ErrorIs(t, err, payments.ErrForbidden)
}

func TestService_Disburse(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)
	f.api.EXPECT().
		Account(gomock.Any(), "acct_123").
		Return(&payments.Account{ID: "acct_123", PayoutsEnabled: true}, nil)
	f.api.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params payments.TransferParams) (*payments.Transfer, error) {
			assert.Equal(t, int64(50_000), params.AmountCents)
			assert.Equal(t, "disburse_"+proposalID.String(), params.IdempotencyKey)
			return &payments.Transfer{ID: "tr_1", AmountCents: params.AmountCents, Destination: params.Destination}, nil
		})
	f.api.EXPECT().
		CreatePayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params payments.PayoutParams) (*payments.Payout, error) {
			assert.Equal(t, "disburse_"+proposalID.String()+"_po", params.IdempotencyKey)
			assert.Equal(t, "acct_123", params.AccountID)
			return &payments.Payout{ID: "po_1", AmountCents: params.AmountCents, Status: "pending"}, nil
		})
	f.writer.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			require.NotNil(t, tx.ExternalID)
			assert.Equal(t, "po_1", *tx.ExternalID)
			assert.Equal(t, transaction.StatusPending, tx.Status)
			return nil
		})
	f.repo.EXPECT().SetProposalPayoutStatus(gomock.Any(), proposalID, "processing").Return(nil)

	d, err := svc.Disburse(context.Background(), f.admin, proposalID)
	require.NoError(t, err)
	assert.Equal(t, "tr_1", d.TransferID)
	assert.Equal(t, "po_1", d.PayoutID)
}

// With auto-payout on, the recorded row must carry the payout id, because
// that is the id the payout.paid webhook will look up.
func TestService_Disburse_RowKeyedByPayoutID(t *testing.T) {
	f := newFixture(t)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)
	svc := payments.NewService(payments.NewDryRunAPI(nil), f.repo, f.writer, true)

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)
	f.repo.EXPECT().SetProposalPayoutStatus(gomock.Any(), proposalID, "processing").Return(nil)

	var recorded *transaction.Transaction
	f.writer.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			recorded = tx
			return nil
		})

	d, err := svc.Disburse(context.Background(), f.admin, proposalID)
	require.NoError(t, err)
	require.NotNil(t, recorded)
	require.NotNil(t, recorded.ExternalID)
	assert.Equal(t, "po_test_"+proposalID.String(), d.PayoutID)
	assert.Equal(t, d.PayoutID, *recorded.ExternalID)
	assert.True(t, d.DryRun)

	// The webhook settles the same row it looks up.
	f.repo.EXPECT().
		ApplyPayoutPaid(gomock.Any(), *recorded.ExternalID, gomock.Any(), p.AmountCents).
		Return(nil)

	reconciler := payments.NewReconciler(f.repo)
	err = reconciler.Process(context.Background(), payments.Event{
		Type:        "payout.paid",
		ObjectID:    d.PayoutID,
		AmountCents: p.AmountCents,
		ProposalID:  &proposalID,
	})
	require.NoError(t, err)
}

// Without auto-payout there is no payout object, so the transfer id is the
// only id the provider can reference.
func TestService_Disburse_TransferOnlyKeysRowByTransferID(t *testing.T) {
	f := newFixture(t)
	svc := f.service(false)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)
	f.api.EXPECT().
		Account(gomock.Any(), "acct_123").
		Return(&payments.Account{ID: "acct_123", PayoutsEnabled: true}, nil)
	f.api.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		Return(&payments.Transfer{ID: "tr_9"}, nil)
	f.writer.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			require.NotNil(t, tx.ExternalID)
			assert.Equal(t, "tr_9", *tx.ExternalID)
			return nil
		})
	f.repo.EXPECT().SetProposalPayoutStatus(gomock.Any(), proposalID, "processing").Return(nil)

	d, err := svc.Disburse(context.Background(), f.admin, proposalID)
	require.NoError(t, err)
	assert.Equal(t, "tr_9", d.TransferID)
	assert.Empty(t, d.PayoutID)
}

func TestService_Disburse_PayoutsDisabled(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	proposalID := uuid.New()
	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(f.payableProposal(proposalID), nil)
	f.api.EXPECT().
		Account(gomock.Any(), "acct_123").
		Return(&payments.Account{ID: "acct_123", PayoutsEnabled: false}, nil)

	// No CreateTransfer expectation: no money moves.
	_, err := svc.Disburse(context.Background(), f.admin, proposalID)
	assert.ErrorIs(t, err, payments.ErrPayoutsDisabled)
}

func TestService_Disburse_PendingProposal(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)
	p.Status = "pending"

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)

	_, err := svc.Disburse(context.Background(), f.admin, proposalID)
	assert.ErrorIs(t, err, payments.ErrProposalNotPayable)
}

func TestService_Disburse_AlreadyPaid(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)
	p.PayoutStatus = strPtr("paid")

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)

	_, err := svc.Disburse(context.Background(), f.admin, proposalID)
	assert.ErrorIs(t, err, payments.ErrProposalNotPayable)
}

func TestService_Disburse_NoConnectedAccount(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	proposalID := uuid.New()
	p := f.payableProposal(proposalID)
	p.StripeAccountID = nil

	f.repo.EXPECT().GetDisbursableProposal(gomock.Any(), proposalID).Return(p, nil)

	_, err := svc.Disburse(context.Background(), f.admin, proposalID)
	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestService_Disburse_ManagerForbidden(t *testing.T) {
	f := newFixture(t)
	svc := f.service(true)

	mgr := access.Actor{ID: uuid.New(), OrganizationID: f.admin.OrganizationID, Role: access.RoleManager}

	_, err := svc.Disburse(context.Background(), mgr, uuid.New())
	assert.ErrorIs(t, err, payments.ErrForbidden)
}

func TestDryRunAPI_FabricatesIdentifiers(t *testing.T) {
	api := payments.NewDryRunAPI(nil)
	proposalID := uuid.New()

	tr, err := api.CreateTransfer(context.Background(), payments.TransferParams{AmountCents: 100, ProposalID: proposalID})
	require.NoError(t, err)
	assert.Equal(t, "tr_test_"+proposalID.String(), tr.ID)

	po, err := api.CreatePayout(context.Background(), payments.PayoutParams{AmountCents: 100, ProposalID: proposalID})
	require.NoError(t, err)
	assert.Equal(t, "po_test_"+proposalID.String(), po.ID)

	acct, err := api.Account(context.Background(), "acct_x")
	require.NoError(t, err)
	assert.True(t, acct.PayoutsEnabled)
}
