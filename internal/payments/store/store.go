package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/payments"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetDisbursableProposal(ctx context.Context, proposalID uuid.UUID) (*payments.DisbursableProposal, error) {
	query := `
		SELECT p.id, p.amount_cents, p.description, p.status, p.payout_status,
			p.requested_by, u.stripe_account_id, p.organization_id, p.project_id
		FROM spending_proposals p
		JOIN users u ON u.id = p.requested_by
		WHERE p.id = $1
	`

	var (
		p       payments.DisbursableProposal
		payout  sql.NullString
		account sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, proposalID).Scan(
		&p.ID, &p.AmountCents, &p.Description, &p.Status, &payout,
		&p.RequestedBy, &account, &p.OrganizationID, &p.ProjectID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrNotFound
		}

		return nil, fmt.Errorf("getting proposal: %w", err)
	}

	if payout.Valid {
		p.PayoutStatus = &payout.String
	}

	if account.Valid {
		p.StripeAccountID = &account.String
	}

	return &p, nil
}

func (s *Store) SetProposalPayoutStatus(ctx context.Context, proposalID uuid.UUID, status string) error {
	query := `UPDATE spending_proposals SET payout_status = $1, updated_at = NOW() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, status, proposalID)
	if err != nil {
		return fmt.Errorf("updating payout status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating payout status: %w", err)
	}

	if affected == 0 {
		return payments.ErrNotFound
	}

	return nil
}

// ApplyPayoutPaid settles a payout: the transaction flips to paid, the
// linked proposal's payout closes, and the amount lands on the project's
// most recent budget. All three writes commit together or not at all.
func (s *Store) ApplyPayoutPaid(ctx context.Context, externalID string, proposalID *uuid.UUID, amountCents int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE transactions SET status = 'paid', updated_at = NOW() WHERE external_id = $1`,
		externalID,
	)
	if err != nil {
		return fmt.Errorf("marking transaction paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking transaction paid: %w", err)
	}

	if affected == 0 {
		return payments.ErrNotFound
	}

	if proposalID != nil {
		var (
			projectID      uuid.UUID
			organizationID uuid.UUID
		)

		err = tx.QueryRowContext(ctx,
			`UPDATE spending_proposals SET payout_status = 'paid', updated_at = NOW()
			 WHERE id = $1
			 RETURNING project_id, organization_id`,
			*proposalID,
		).Scan(&projectID, &organizationID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return payments.ErrNotFound
			}

			return fmt.Errorf("closing proposal payout: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE budgets SET spent_cents = spent_cents + $1, updated_at = NOW()
			 WHERE id = (
				SELECT id FROM budgets
				WHERE organization_id = $2 AND project_id = $3
				ORDER BY updated_at DESC
				LIMIT 1
			 )`,
			amountCents, organizationID, projectID,
		)
		if err != nil {
			return fmt.Errorf("booking spend against budget: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing payout settlement: %w", err)
	}

	return nil
}

func (s *Store) SetTransactionStatusByExternalID(ctx context.Context, externalID string, status string) error {
	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE external_id = $2`

	result, err := s.db.ExecContext(ctx, query, status, externalID)
	if err != nil {
		return fmt.Errorf("updating transaction status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction status: %w", err)
	}

	if affected == 0 {
		return payments.ErrNotFound
	}

	return nil
}
