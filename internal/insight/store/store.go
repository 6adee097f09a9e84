package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/insight"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAlert(ctx context.Context, a *insight.Alert) error {
	query := `
		INSERT INTO alerts (alert_type, severity, message, organization_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.AlertType,
		string(a.Severity),
		a.Message,
		a.OrganizationID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating alert: %w", err)
	}

	return nil
}

func (s *Store) ListAlerts(ctx context.Context, organizationID uuid.UUID, unreadOnly bool) ([]*insight.Alert, error) {
	query := `
		SELECT id, alert_type, severity, message, is_read, organization_id, created_at
		FROM alerts
		WHERE organization_id = $1
	`

	if unreadOnly {
		query += " AND NOT is_read"
	}

	query += " ORDER BY created_at DESC LIMIT 100"

	rows, err := s.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*insight.Alert

	for rows.Next() {
		var (
			a           insight.Alert
			severityStr string
		)

		if err := rows.Scan(&a.ID, &a.AlertType, &severityStr, &a.Message, &a.IsRead, &a.OrganizationID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}

		a.Severity = insight.Severity(severityStr)
		alerts = append(alerts, &a)
	}

	return alerts, rows.Err()
}

func (s *Store) MarkAlertRead(ctx context.Context, id, organizationID uuid.UUID) error {
	query := `UPDATE alerts SET is_read = TRUE WHERE id = $1 AND organization_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("marking alert read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking alert read: %w", err)
	}

	if affected == 0 {
		return insight.ErrNotFound
	}

	return nil
}

func (s *Store) CreateChatEntry(ctx context.Context, e *insight.ChatEntry) error {
	query := `
		INSERT INTO chat_history (user_id, organization_id, message, response, agent_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.UserID,
		e.OrganizationID,
		e.Message,
		e.Response,
		e.AgentType,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating chat entry: %w", err)
	}

	return nil
}

func (s *Store) ListChatEntries(ctx context.Context, organizationID uuid.UUID, userID uuid.UUID, limit int) ([]*insight.ChatEntry, error) {
	query := `
		SELECT id, user_id, organization_id, message, response, agent_type, created_at
		FROM chat_history
		WHERE organization_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, organizationID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat entries: %w", err)
	}
	defer rows.Close()

	var entries []*insight.ChatEntry

	for rows.Next() {
		var e insight.ChatEntry

		if err := rows.Scan(&e.ID, &e.UserID, &e.OrganizationID, &e.Message, &e.Response, &e.AgentType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat entry: %w", err)
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func (s *Store) CreatePolicyDocument(ctx context.Context, doc *insight.PolicyDocument) error {
	query := `
		INSERT INTO policy_documents (content, category, organization_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		doc.Content,
		doc.Category,
		doc.OrganizationID,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating policy document: %w", err)
	}

	return nil
}

func (s *Store) ListPolicyDocuments(ctx context.Context, organizationID uuid.UUID) ([]*insight.PolicyDocument, error) {
	query := `
		SELECT id, content, category, organization_id, created_at
		FROM policy_documents
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing policy documents: %w", err)
	}
	defer rows.Close()

	var docs []*insight.PolicyDocument

	for rows.Next() {
		var doc insight.PolicyDocument

		if err := rows.Scan(&doc.ID, &doc.Content, &doc.Category, &doc.OrganizationID, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning policy document: %w", err)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
