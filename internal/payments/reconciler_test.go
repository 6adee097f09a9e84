package payments_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/payments"
)

func newReconciler(t *testing.T) (*payments.MockRepository, *payments.Reconciler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := payments.NewMockRepository(ctrl)

	return repo, payments.NewReconciler(repo)
}

func TestReconciler_ChargeSucceeded(t *testing.T) {
	repo, r := newReconciler(t)

	repo.EXPECT().
		SetTransactionStatusByExternalID(gomock.Any(), "ch_1", "succeeded").
		Return(nil)

	err := r.Process(context.Background(), payments.Event{Type: "charge.succeeded", ObjectID: "ch_1"})
	require.NoError(t, err)
}

func TestReconciler_ChargeRefunded(t *testing.T) {
	repo, r := newReconciler(t)

	repo.EXPECT().
		SetTransactionStatusByExternalID(gomock.Any(), "ch_1", "refunded").
		Return(nil)

	err := r.Process(context.Background(), payments.Event{Type: "charge.refunded", ObjectID: "ch_1"})
	require.NoError(t, err)
}

func TestReconciler_PayoutPaid(t *testing.T) {
	repo, r := newReconciler(t)

	proposalID := uuid.New()
	repo.EXPECT().
		ApplyPayoutPaid(gomock.Any(), "po_1", &proposalID, int64(50_000)).
		Return(nil)

	err := r.Process(context.Background(), payments.Event{
		Type:        "payout.paid",
		ObjectID:    "po_1",
		AmountCents: 50_000,
		ProposalID:  &proposalID,
	})
	require.NoError(t, err)
}

func TestReconciler_PayoutPaidUnknownObjectAcked(t *testing.T) {
	repo, r := newReconciler(t)

	repo.EXPECT().
		ApplyPayoutPaid(gomock.Any(), "po_missing", gomock.Nil(), int64(1_000)).
		Return(payments.ErrNotFound)

	err := r.Process(context.Background(), payments.Event{
		Type:        "payout.paid",
		ObjectID:    "po_missing",
		AmountCents: 1_000,
	})
	assert.NoError(t, err)
}

func TestReconciler_PayoutFailed(t *testing.T) {
	repo, r := newReconciler(t)

	proposalID := uuid.New()
	repo.EXPECT().
		SetProposalPayoutStatus(gomock.Any(), proposalID, "failed").
		Return(nil)
	repo.EXPECT().
		SetTransactionStatusByExternalID(gomock.Any(), "po_1", "failed").
		Return(nil)

	err := r.Process(context.Background(), payments.Event{
		Type:       "payout.failed",
		ObjectID:   "po_1",
		ProposalID: &proposalID,
	})
	require.NoError(t, err)
}

func TestReconciler_UnknownObjectAcked(t *testing.T) {
	repo, r := newReconciler(t)

	repo.EXPECT().
		SetTransactionStatusByExternalID(gomock.Any(), "ch_missing", "succeeded").
		Return(payments.ErrNotFound)

	err := r.Process(context.Background(), payments.Event{Type: "charge.succeeded", ObjectID: "ch_missing"})
	assert.NoError(t, err)
}

func TestReconciler_TransientErrorPropagates(t *testing.T) {
	repo, r := newReconciler(t)

	repo.EXPECT().
		SetTransactionStatusByExternalID(gomock.Any(), "ch_1", "succeeded").
		Return(errors.New("connection reset"))

	err := r.Process(context.Background(), payments.Event{Type: "charge.succeeded", ObjectID: "ch_1"})
	assert.Error(t, err)
}

func TestReconciler_UnhandledTypeIgnored(t *testing.T) {
	_, r := newReconciler(t)

	err := r.Process(context.Background(), payments.Event{Type: "customer.created", ObjectID: "cus_1"})
	assert.NoError(t, err)
}
