package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/invoice"
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

const selectInvoiceColumns = `
	id, invoice_id, vendor, amount_cents, due_date, status, is_overdue,
	organization_id, created_at, updated_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv       invoice.Invoice
		due       sql.NullTime
		statusStr string
	)

	if err := s.Scan(
		&inv.ID, &inv.InvoiceRef, &inv.Vendor, &inv.AmountCents, &due, &statusStr, &inv.IsOverdue,
		&inv.OrganizationID, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)

	if due.Valid {
		inv.DueDate = &due.Time
	}

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, vendor, amount_cents, due_date, status, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.InvoiceRef,
		inv.Vendor,
		inv.AmountCents,
		inv.DueDate,
		string(inv.Status),
		inv.OrganizationID,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoiceByRef(ctx context.Context, organizationID uuid.UUID, ref string) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE organization_id = $1 AND invoice_id = $2`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, organizationID, ref))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, organizationID uuid.UUID, status *invoice.Status) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE organization_id = $1`

	args := []any{organizationID}

	if status != nil {
		query += " AND status = $2"

		args = append(args, string(*status))
	}

	query += " ORDER BY due_date ASC NULLS LAST, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (s *Store) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status invoice.Status) error {
	query := `UPDATE invoices SET status = $1, is_overdue = FALSE, updated_at = NOW() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

// MarkOverdue flags pending invoices whose due date has passed. Returns the
// number of rows flipped.
func (s *Store) MarkOverdue(ctx context.Context, organizationID uuid.UUID, asOf time.Time) (int64, error) {
	query := `
		UPDATE invoices
		SET is_overdue = TRUE, updated_at = NOW()
		WHERE organization_id = $1 AND status = 'pending' AND due_date < $2 AND NOT is_overdue
	`

	result, err := s.db.ExecContext(ctx, query, organizationID, asOf)
	if err != nil {
		return 0, fmt.Errorf("marking invoices overdue: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("marking invoices overdue: %w", err)
	}

	return affected, nil
}
