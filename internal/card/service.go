package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	CreateCard(ctx context.Context, c *CorporateCard) error
	GetCard(ctx context.Context, id uuid.UUID) (*CorporateCard, error)
	ListCards(ctx context.Context, organizationID uuid.UUID, userID *uuid.UUID) ([]*CorporateCard, error)
	UpdateCard(ctx context.Context, c *CorporateCard) error
	CreateCardTransaction(ctx context.Context, ct *CardTransaction) error
	ListCardTransactions(ctx context.Context, cardID uuid.UUID) ([]*CardTransaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CardName              string
	LastFour              string
	UserID                *uuid.UUID
	MonthlyLimitCents     int64
	TransactionLimitCents int64
	CardType              Type
}

func (s *Service) Create(ctx context.Context, actor access.Actor, params CreateParams) (*CorporateCard, error) {
	if !actor.Role.Can(access.CapManageCards) {
		return nil, ErrForbidden
	}

	if params.CardName == "" {
		return nil, fmt.Errorf("%w: card name is required", ErrValidation)
	}

	if len(params.LastFour) != 4 {
		return nil, fmt.Errorf("%w: exactly four card digits expected", ErrValidation)
	}

	if params.CardType == "" {
		params.CardType = TypeVirtual
	}

	c := &CorporateCard{
		CardNumber:            "**** **** **** " + params.LastFour,
		CardName:              params.CardName,
		UserID:                params.UserID,
		OrganizationID:        actor.OrganizationID,
		MonthlyLimitCents:     params.MonthlyLimitCents,
		TransactionLimitCents: params.TransactionLimitCents,
		Status:                StatusActive,
		CardType:              params.CardType,
	}
	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns the organization's cards; employees only see cards issued to
// them.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]*CorporateCard, error) {
	var userID *uuid.UUID

	if actor.Role.IsEmployee() {
		holder := actor.ID
		userID = &holder
	}

	return s.repo.ListCards(ctx, actor.OrganizationID, userID)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*CorporateCard, error) {
	c, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.OrganizationID != actor.OrganizationID {
		return nil, ErrNotFound
	}

	if actor.Role.IsEmployee() && (c.UserID == nil || *c.UserID != actor.ID) {
		return nil, ErrForbidden
	}

	return c, nil
}

type UpdateParams struct {
	MonthlyLimitCents     *int64
	TransactionLimitCents *int64
	Status                *Status
	UserID                *uuid.UUID
}

func (s *Service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, params UpdateParams) (*CorporateCard, error) {
	if !actor.Role.Can(access.CapManageCards) {
		return nil, ErrForbidden
	}

	c, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.OrganizationID != actor.OrganizationID {
		return nil, ErrNotFound
	}

	if params.MonthlyLimitCents != nil {
		c.MonthlyLimitCents = *params.MonthlyLimitCents
	}

	if params.TransactionLimitCents != nil {
		c.TransactionLimitCents = *params.TransactionLimitCents
	}

	if params.Status != nil {
		c.Status = *params.Status
	}

	if params.UserID != nil {
		c.UserID = params.UserID
	}

	if err := s.repo.UpdateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Freeze is a shorthand for setting the card status to frozen.
func (s *Service) Freeze(ctx context.Context, actor access.Actor, id uuid.UUID) (*CorporateCard, error) {
	frozen := StatusFrozen
	return s.Update(ctx, actor, id, UpdateParams{Status: &frozen})
}

// RecordCardTransaction links a booked transaction to a card and moves the
// card balance. Satisfies the transaction service's CardLinker.
func (s *Service) RecordCardTransaction(ctx context.Context, cardID, txID uuid.UUID, amountCents int64, merchant, category string, status string) error {
	c, err := s.repo.GetCard(ctx, cardID)
	if err != nil {
		return err
	}

	ct := &CardTransaction{
		CardID:        cardID,
		TransactionID: txID,
		AmountCents:   amountCents,
		Merchant:      merchant,
		Category:      category,
		Status:        status,
	}
	if err := s.repo.CreateCardTransaction(ctx, ct); err != nil {
		return err
	}

	c.BalanceCents += amountCents

	return s.repo.UpdateCard(ctx, c)
}

func (s *Service) Transactions(ctx context.Context, actor access.Actor, cardID uuid.UUID) ([]*CardTransaction, error) {
	if _, err := s.Get(ctx, actor, cardID); err != nil {
		return nil, err
	}

	return s.repo.ListCardTransactions(ctx, cardID)
}
