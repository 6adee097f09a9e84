package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Reconciler applies provider webhook events to local state. Events for
// objects the database has never seen are logged and acknowledged so the
// provider stops retrying them.
type Reconciler struct {
	repo Repository
}

func NewReconciler(repo Repository) *Reconciler {
	return &Reconciler{repo: repo}
}

func (r *Reconciler) Process(ctx context.Context, event Event) error {
	switch event.Type {
	case "payment_intent.succeeded", "charge.succeeded":
		return r.setStatus(ctx, event.ObjectID, "succeeded")

	case "charge.refunded":
		return r.setStatus(ctx, event.ObjectID, "refunded")

	case "payout.paid":
		if err := r.repo.ApplyPayoutPaid(ctx, event.ObjectID, event.ProposalID, event.AmountCents); err != nil {
			if errors.Is(err, ErrNotFound) {
				slog.Warn("payout.paid for unknown transaction", "payout_id", event.ObjectID)
				return nil
			}

			return fmt.Errorf("applying payout %s: %w", event.ObjectID, err)
		}

		slog.Info("payout settled", "payout_id", event.ObjectID, "amount_cents", event.AmountCents)

		return nil

	case "payout.failed":
		if event.ProposalID != nil {
			if err := r.repo.SetProposalPayoutStatus(ctx, *event.ProposalID, "failed"); err != nil {
				return fmt.Errorf("marking proposal payout failed: %w", err)
			}
		}

		return r.setStatus(ctx, event.ObjectID, "failed")
	}

	slog.Debug("ignoring webhook event", "type", event.Type, "object_id", event.ObjectID)

	return nil
}

func (r *Reconciler) setStatus(ctx context.Context, externalID, status string) error {
	err := r.repo.SetTransactionStatusByExternalID(ctx, externalID, status)
	if errors.Is(err, ErrNotFound) {
		// An unknown object is not worth a provider retry loop.
		slog.Warn("webhook for unknown transaction", "external_id", externalID, "status", status)
		return nil
	}

	return err
}
