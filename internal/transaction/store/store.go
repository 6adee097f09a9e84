package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/approval"
	"github.com/oselabs/cfopilot/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, external_id, amount_cents, currency, date, category, merchant, status,
	description, payment_method, fraud_flag, approval_required,
	employee_id, created_by, project_id, card_id, organization_id, created_at, updated_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		t          transaction.Transaction
		externalID sql.NullString
		statusStr  string
	)

	if err := s.Scan(
		&t.ID, &externalID, &t.AmountCents, &t.Currency, &t.Date, &t.Category, &t.Merchant, &statusStr,
		&t.Description, &t.PaymentMethod, &t.FraudFlag, &t.ApprovalRequired,
		&t.EmployeeID, &t.CreatedBy, &t.ProjectID, &t.CardID, &t.OrganizationID, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Status = transaction.Status(statusStr)

	if externalID.Valid {
		t.ExternalID = &externalID.String
	}

	return &t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			external_id, amount_cents, currency, date, category, merchant, status,
			description, payment_method, fraud_flag, approval_required,
			employee_id, created_by, project_id, card_id, organization_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.ExternalID,
		t.AmountCents,
		t.Currency,
		t.Date,
		t.Category,
		t.Merchant,
		string(t.Status),
		t.Description,
		t.PaymentMethod,
		t.FraudFlag,
		t.ApprovalRequired,
		t.EmployeeID,
		t.CreatedBy,
		t.ProjectID,
		t.CardID,
		t.OrganizationID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return t, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE organization_id = $1`

	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Merchant != nil {
		query += fmt.Sprintf(" AND merchant ILIKE $%d", argIdx)

		args = append(args, "%"+*filter.Merchant+"%")
		argIdx++
	}

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.ProjectIDs != nil {
		// Rows without a project stay visible alongside assigned projects.
		query += fmt.Sprintf(" AND (project_id = ANY($%d) OR project_id IS NULL)", argIdx)

		args = append(args, projectIDArray(filter.ProjectIDs))
		argIdx++
	}

	if filter.CreatedBy != nil {
		query += fmt.Sprintf(" AND created_by = $%d", argIdx)

		args = append(args, *filter.CreatedBy)
		argIdx++
	}

	if filter.ApprovalRequired != nil {
		query += fmt.Sprintf(" AND approval_required = $%d", argIdx)

		args = append(args, *filter.ApprovalRequired)
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// projectIDArray renders a uuid slice as a Postgres array literal, which the
// pgx stdlib driver binds for ANY($n) without a typed array import.
func projectIDArray(ids []uuid.UUID) string {
	out := "{"

	for i, id := range ids {
		if i > 0 {
			out += ","
		}

		out += id.String()
	}

	return out + "}"
}

// DecideTransaction flips a pending row and appends the audit event in one
// database transaction. The WHERE status = 'pending' guard makes the first
// decision win.
func (s *Store) DecideTransaction(ctx context.Context, id uuid.UUID, status transaction.Status, event *approval.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING id
	`

	var updated uuid.UUID
	if err := tx.QueryRowContext(ctx, query, string(status), id).Scan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transaction.ErrAlreadyDecided
		}

		return fmt.Errorf("deciding transaction: %w", err)
	}

	eventQuery := `
		INSERT INTO approval_events (subject_type, subject_id, actor_id, approval_level, status, comments, organization_id, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, eventQuery,
		string(event.SubjectType),
		event.SubjectID,
		event.ActorID,
		event.Level,
		string(event.Status),
		event.Comments,
		event.OrganizationID,
		event.DecidedAt,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating approval event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing decision: %w", err)
	}

	return nil
}

// UpsertByExternalID inserts a provider-sourced row or refreshes the mutable
// fields of an existing one. The unique index on external_id carries the
// conflict.
func (s *Store) UpsertByExternalID(ctx context.Context, t *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			external_id, amount_cents, currency, date, category, merchant, status,
			description, payment_method, fraud_flag, approval_required,
			employee_id, created_by, project_id, card_id, organization_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (external_id) DO UPDATE SET
			amount_cents = EXCLUDED.amount_cents,
			status = EXCLUDED.status,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.ExternalID,
		t.AmountCents,
		t.Currency,
		t.Date,
		t.Category,
		t.Merchant,
		string(t.Status),
		t.Description,
		t.PaymentMethod,
		t.FraudFlag,
		t.ApprovalRequired,
		t.EmployeeID,
		t.CreatedBy,
		t.ProjectID,
		t.CardID,
		t.OrganizationID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatusByExternalID(ctx context.Context, externalID string, status transaction.Status) error {
	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE external_id = $2`

	result, err := s.db.ExecContext(ctx, query, string(status), externalID)
	if err != nil {
		return fmt.Errorf("updating transaction status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction status: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
