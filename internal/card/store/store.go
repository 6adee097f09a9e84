package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/card"
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

const selectCardColumns = `
	id, card_number, card_name, user_id, organization_id,
	monthly_limit_cents, transaction_limit_cents, balance_cents,
	status, card_type, created_at, updated_at
`

func scanCard(s scanner) (*card.CorporateCard, error) {
	var (
		c         card.CorporateCard
		statusStr string
		typeStr   string
	)

	if err := s.Scan(
		&c.ID, &c.CardNumber, &c.CardName, &c.UserID, &c.OrganizationID,
		&c.MonthlyLimitCents, &c.TransactionLimitCents, &c.BalanceCents,
		&statusStr, &typeStr, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = card.Status(statusStr)
	c.CardType = card.Type(typeStr)

	return &c, nil
}

func (s *Store) CreateCard(ctx context.Context, c *card.CorporateCard) error {
	query := `
		INSERT INTO corporate_cards (card_number, card_name, user_id, organization_id, monthly_limit_cents, transaction_limit_cents, balance_cents, status, card_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CardNumber,
		c.CardName,
		c.UserID,
		c.OrganizationID,
		c.MonthlyLimitCents,
		c.TransactionLimitCents,
		c.BalanceCents,
		string(c.Status),
		string(c.CardType),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, id uuid.UUID) (*card.CorporateCard, error) {
	query := `SELECT ` + selectCardColumns + ` FROM corporate_cards WHERE id = $1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context, organizationID uuid.UUID, userID *uuid.UUID) ([]*card.CorporateCard, error) {
	query := `SELECT ` + selectCardColumns + ` FROM corporate_cards WHERE organization_id = $1`

	args := []any{organizationID}

	if userID != nil {
		query += " AND user_id = $2"

		args = append(args, *userID)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*card.CorporateCard

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (s *Store) UpdateCard(ctx context.Context, c *card.CorporateCard) error {
	query := `
		UPDATE corporate_cards
		SET card_name = $1, user_id = $2, monthly_limit_cents = $3, transaction_limit_cents = $4,
			balance_cents = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CardName,
		c.UserID,
		c.MonthlyLimitCents,
		c.TransactionLimitCents,
		c.BalanceCents,
		string(c.Status),
		c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return card.ErrNotFound
		}

		return fmt.Errorf("updating card: %w", err)
	}

	return nil
}

func (s *Store) CreateCardTransaction(ctx context.Context, ct *card.CardTransaction) error {
	query := `
		INSERT INTO card_transactions (card_id, transaction_id, amount_cents, merchant, category, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ct.CardID,
		ct.TransactionID,
		ct.AmountCents,
		ct.Merchant,
		ct.Category,
		ct.Status,
	).Scan(&ct.ID, &ct.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating card transaction: %w", err)
	}

	return nil
}

func (s *Store) ListCardTransactions(ctx context.Context, cardID uuid.UUID) ([]*card.CardTransaction, error) {
	query := `
		SELECT id, card_id, transaction_id, amount_cents, merchant, category, status, created_at
		FROM card_transactions
		WHERE card_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing card transactions: %w", err)
	}
	defer rows.Close()

	var links []*card.CardTransaction

	for rows.Next() {
		var ct card.CardTransaction

		if err := rows.Scan(&ct.ID, &ct.CardID, &ct.TransactionID, &ct.AmountCents, &ct.Merchant, &ct.Category, &ct.Status, &ct.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning card transaction: %w", err)
		}

		links = append(links, &ct)
	}

	return links, rows.Err()
}
