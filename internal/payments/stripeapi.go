package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeAPI implements API against the live Stripe client.
type StripeAPI struct {
	sc *client.API
}

func NewStripeAPI(apiKey string) *StripeAPI {
	sc := new(client.API)
	sc.Init(apiKey, nil)

	return &StripeAPI{sc: sc}
}

func (a *StripeAPI) Account(ctx context.Context, accountID string) (*Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := a.sc.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving account %s: %w", accountID, err)
	}

	return &Account{ID: acct.ID, PayoutsEnabled: acct.PayoutsEnabled}, nil
}

func (a *StripeAPI) ListCharges(ctx context.Context, since time.Time) ([]*Charge, error) {
	params := &stripe.ChargeListParams{
		CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: since.Unix()},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(100)

	var charges []*Charge

	iter := a.sc.Charges.List(params)
	for iter.Next() {
		ch := iter.Charge()
		charges = append(charges, &Charge{
			ID:          ch.ID,
			AmountCents: ch.Amount,
			Currency:    string(ch.Currency),
			Created:     time.Unix(ch.Created, 0),
			Description: ch.Description,
			Status:      string(ch.Status),
			Refunded:    ch.Refunded,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	return charges, nil
}

func (a *StripeAPI) ListPayouts(ctx context.Context, since time.Time) ([]*Payout, error) {
	params := &stripe.PayoutListParams{
		CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: since.Unix()},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(100)

	var payouts []*Payout

	iter := a.sc.Payouts.List(params)
	for iter.Next() {
		po := iter.Payout()
		payouts = append(payouts, &Payout{
			ID:          po.ID,
			AmountCents: po.Amount,
			Currency:    string(po.Currency),
			Created:     time.Unix(po.Created, 0),
			Status:      string(po.Status),
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}

	return payouts, nil
}

func (a *StripeAPI) CreateTransfer(ctx context.Context, p TransferParams) (*Transfer, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(p.AmountCents),
		Currency:    stripe.String(p.Currency),
		Destination: stripe.String(p.Destination),
		Description: stripe.String(p.Description),
	}
	params.Context = ctx
	params.SetIdempotencyKey(p.IdempotencyKey)
	params.AddMetadata("proposal_id", p.ProposalID.String())

	tr, err := a.sc.Transfers.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	return &Transfer{ID: tr.ID, AmountCents: tr.Amount, Destination: p.Destination}, nil
}

func (a *StripeAPI) CreatePayout(ctx context.Context, p PayoutParams) (*Payout, error) {
	params := &stripe.PayoutParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
	}
	params.Context = ctx
	params.SetStripeAccount(p.AccountID)
	params.SetIdempotencyKey(p.IdempotencyKey)
	params.AddMetadata("proposal_id", p.ProposalID.String())

	po, err := a.sc.Payouts.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating payout: %w", err)
	}

	return &Payout{
		ID:          po.ID,
		AmountCents: po.Amount,
		Currency:    string(po.Currency),
		Created:     time.Unix(po.Created, 0),
		Status:      string(po.Status),
	}, nil
}
