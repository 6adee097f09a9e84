package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DryRunAPI wraps a real API but fabricates money movement: reads pass
// through, transfers and payouts return test ids without touching the
// provider. Used in staging and the payout simulator.
type DryRunAPI struct {
	reads API
}

func NewDryRunAPI(reads API) *DryRunAPI {
	return &DryRunAPI{reads: reads}
}

func (a *DryRunAPI) Account(ctx context.Context, accountID string) (*Account, error) {
	if a.reads != nil {
		return a.reads.Account(ctx, accountID)
	}

	return &Account{ID: accountID, PayoutsEnabled: true}, nil
}

func (a *DryRunAPI) ListCharges(ctx context.Context, since time.Time) ([]*Charge, error) {
	if a.reads != nil {
		return a.reads.ListCharges(ctx, since)
	}

	return nil, nil
}

func (a *DryRunAPI) ListPayouts(ctx context.Context, since time.Time) ([]*Payout, error) {
	if a.reads != nil {
		return a.reads.ListPayouts(ctx, since)
	}

	return nil, nil
}

func (a *DryRunAPI) CreateTransfer(ctx context.Context, p TransferParams) (*Transfer, error) {
	id := fmt.Sprintf("tr_test_%s", p.ProposalID)

	slog.Info("dry-run transfer", "transfer_id", id, "amount_cents", p.AmountCents, "destination", p.Destination)

	return &Transfer{ID: id, AmountCents: p.AmountCents, Destination: p.Destination}, nil
}

func (a *DryRunAPI) CreatePayout(ctx context.Context, p PayoutParams) (*Payout, error) {
	id := fmt.Sprintf("po_test_%s", p.ProposalID)

	slog.Info("dry-run payout", "payout_id", id, "amount_cents", p.AmountCents, "account_id", p.AccountID)

	return &Payout{
		ID:          id,
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		Created:     time.Now(),
		Status:      "pending",
	}, nil
}
