package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/budget"
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

const selectBudgetColumns = `
	id, dept, category, project_id, quarter, year,
	approved_cents, spent_cents, organization_id, created_at, updated_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	if err := s.Scan(
		&b.ID, &b.Department, &b.Category, &b.ProjectID, &b.Quarter, &b.Year,
		&b.ApprovedCents, &b.SpentCents, &b.OrganizationID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (dept, category, project_id, quarter, year, approved_cents, spent_cents, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.Department,
		b.Category,
		b.ProjectID,
		b.Quarter,
		b.Year,
		b.ApprovedCents,
		b.SpentCents,
		b.OrganizationID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM budgets WHERE id = $1`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context, filter budget.ListFilter) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM budgets WHERE organization_id = $1`

	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.Department != nil {
		query += fmt.Sprintf(" AND dept = $%d", argIdx)

		args = append(args, *filter.Department)
		argIdx++
	}

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.Quarter != nil {
		query += fmt.Sprintf(" AND quarter = $%d", argIdx)

		args = append(args, *filter.Quarter)
		argIdx++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argIdx)

		args = append(args, *filter.Year)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET dept = $1, category = $2, project_id = $3, quarter = $4, year = $5,
			approved_cents = $6, spent_cents = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		b.Department,
		b.Category,
		b.ProjectID,
		b.Quarter,
		b.Year,
		b.ApprovedCents,
		b.SpentCents,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	return nil
}
