package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/approval"
	"github.com/oselabs/cfopilot/internal/proposal"
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

const selectProposalColumns = `
	id, project_id, dept, amount_cents, description, status, payout_status,
	requested_by, approved_by, organization_id, created_at, updated_at
`

func scanProposal(s scanner) (*proposal.Proposal, error) {
	var (
		p         proposal.Proposal
		statusStr string
		payout    sql.NullString
	)

	if err := s.Scan(
		&p.ID, &p.ProjectID, &p.Department, &p.AmountCents, &p.Description, &statusStr, &payout,
		&p.RequestedBy, &p.ApprovedBy, &p.OrganizationID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = proposal.Status(statusStr)

	if payout.Valid {
		p.PayoutStatus = &payout.String
	}

	return &p, nil
}

const insertEventQuery = `
	INSERT INTO approval_events (subject_type, subject_id, actor_id, approval_level, status, comments, organization_id, decided_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at
`

func (s *Store) CreateProposal(ctx context.Context, p *proposal.Proposal, event *approval.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO spending_proposals (project_id, dept, amount_cents, description, status, requested_by, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		p.ProjectID,
		p.Department,
		p.AmountCents,
		p.Description,
		string(p.Status),
		p.RequestedBy,
		p.OrganizationID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating proposal: %w", err)
	}

	event.SubjectID = p.ID

	err = tx.QueryRowContext(ctx, insertEventQuery,
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
		return fmt.Errorf("committing proposal: %w", err)
	}

	return nil
}

func (s *Store) GetProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + ` FROM spending_proposals WHERE id = $1`

	p, err := scanProposal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, proposal.ErrNotFound
		}

		return nil, fmt.Errorf("getting proposal: %w", err)
	}

	return p, nil
}

// DecideProposal updates the proposal and appends the audit event in one
// transaction. The WHERE status = 'pending' guard makes the first decision
// win; a second attempt matches no rows and returns ErrAlreadyDecided.
func (s *Store) DecideProposal(ctx context.Context, id uuid.UUID, status proposal.Status, approvedBy uuid.UUID, event *approval.Event) (*proposal.Proposal, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE spending_proposals
		SET status = $1, approved_by = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + selectProposalColumns

	p, err := scanProposal(tx.QueryRowContext(ctx, query, string(status), approvedBy, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, proposal.ErrAlreadyDecided
		}

		return nil, fmt.Errorf("deciding proposal: %w", err)
	}

	err = tx.QueryRowContext(ctx, insertEventQuery,
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
		return nil, fmt.Errorf("creating approval event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing decision: %w", err)
	}

	return p, nil
}

func (s *Store) ListProposals(ctx context.Context, filter proposal.ListFilter) ([]*proposal.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + ` FROM spending_proposals WHERE organization_id = $1`

	args := []any{filter.OrganizationID}
	argIdx := 2

	if filter.RequestedBy != nil {
		query += fmt.Sprintf(" AND requested_by = $%d", argIdx)

		args = append(args, *filter.RequestedBy)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.ExcludePending {
		query += " AND status <> 'pending'"
	}

	query += " ORDER BY updated_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*proposal.Proposal

	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proposal: %w", err)
		}

		proposals = append(proposals, p)
	}

	return proposals, rows.Err()
}

func (s *Store) ListEvents(ctx context.Context, subjectID uuid.UUID) ([]*approval.Event, error) {
	query := `
		SELECT id, subject_type, subject_id, actor_id, approval_level, status, comments, organization_id, decided_at, created_at
		FROM approval_events
		WHERE subject_type = $1 AND subject_id = $2
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, string(approval.SubjectProposal), subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing approval events: %w", err)
	}
	defer rows.Close()

	var events []*approval.Event

	for rows.Next() {
		var (
			e         approval.Event
			subType   string
			statusStr string
		)

		if err := rows.Scan(&e.ID, &subType, &e.SubjectID, &e.ActorID, &e.Level, &statusStr, &e.Comments, &e.OrganizationID, &e.DecidedAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning approval event: %w", err)
		}

		e.SubjectType = approval.SubjectType(subType)
		e.Status = approval.Status(statusStr)
		events = append(events, &e)
	}

	return events, rows.Err()
}
