package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/approval"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	// DecideTransaction flips a pending transaction to approved/rejected and
	// appends the audit event in one database transaction. Returns
	// ErrAlreadyDecided when the row is no longer pending.
	DecideTransaction(ctx context.Context, id uuid.UUID, status Status, event *approval.Event) error
	UpsertByExternalID(ctx context.Context, tx *Transaction) error
	UpdateStatusByExternalID(ctx context.Context, externalID string, status Status) error
}

// CardLinker records the card-to-transaction link when a manual entry names
// a corporate card.
type CardLinker interface {
	RecordCardTransaction(ctx context.Context, cardID, txID uuid.UUID, amountCents int64, merchant, category string, status string) error
}

// InvoiceMarker settles an invoice referenced by a manual entry.
type InvoiceMarker interface {
	MarkPaidByReference(ctx context.Context, organizationID uuid.UUID, invoiceRef string) error
}

type Service struct {
	repo     Repository
	checker  *access.Checker
	cards    CardLinker
	invoices InvoiceMarker
}

func NewService(repo Repository, checker *access.Checker, cards CardLinker, invoices InvoiceMarker) *Service {
	return &Service{repo: repo, checker: checker, cards: cards, invoices: invoices}
}

type CreateParams struct {
	AmountCents   int64
	Date          time.Time
	Category      string
	Merchant      string
	Description   string
	Currency      string
	PaymentMethod string
	Status        Status
	ProjectID     *uuid.UUID
	CardID        *uuid.UUID
	InvoiceRef    string
}

// CreateManual records a hand-entered transaction. Employees and managers
// may only book against projects they are assigned to; admins anywhere in
// their organization.
func (s *Service) CreateManual(ctx context.Context, actor access.Actor, params CreateParams) (*Transaction, error) {
	if params.AmountCents == 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	if !actor.Role.IsAdmin() && params.ProjectID != nil {
		if !s.checker.CanSubmitProposal(ctx, actor, *params.ProjectID) {
			return nil, ErrForbidden
		}
	}

	if params.Currency == "" {
		params.Currency = "USD"
	}

	if params.PaymentMethod == "" {
		params.PaymentMethod = "manual"
	}

	if params.Status == "" {
		params.Status = StatusPending
	}

	actorID := actor.ID
	tx := &Transaction{
		AmountCents:    params.AmountCents,
		Currency:       params.Currency,
		Date:           params.Date,
		Category:       params.Category,
		Merchant:       params.Merchant,
		Status:         params.Status,
		Description:    params.Description,
		PaymentMethod:  params.PaymentMethod,
		EmployeeID:     &actorID,
		CreatedBy:      &actorID,
		ProjectID:      params.ProjectID,
		CardID:         params.CardID,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	// Side effects are best-effort: a failed link must not undo the entry.
	if params.CardID != nil {
		err := s.cards.RecordCardTransaction(ctx, *params.CardID, tx.ID, tx.AmountCents, tx.Merchant, tx.Category, string(tx.Status))
		if err != nil {
			slog.Error("failed to link card transaction", "transaction_id", tx.ID, "card_id", *params.CardID, "error", err)
		}
	}

	if params.InvoiceRef != "" {
		if err := s.invoices.MarkPaidByReference(ctx, actor.OrganizationID, params.InvoiceRef); err != nil {
			slog.Error("failed to mark invoice paid", "transaction_id", tx.ID, "invoice_ref", params.InvoiceRef, "error", err)
		}
	}

	return tx, nil
}

type ListFilter struct {
	OrganizationID   uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
	Category         *string
	Status           *Status
	Merchant         *string
	ProjectID        *uuid.UUID
	ProjectIDs       []uuid.UUID
	CreatedBy        *uuid.UUID
	ApprovalRequired *bool
	Limit            int
}

// List returns transactions scoped to the actor: the whole organization for
// admins, assigned projects for managers, and additionally only their own
// entries for employees.
func (s *Service) List(ctx context.Context, actor access.Actor, filter ListFilter) ([]*Transaction, error) {
	filter.OrganizationID = actor.OrganizationID

	if filter.Limit <= 0 {
		filter.Limit = 500
	}

	if !actor.Role.IsAdmin() {
		assigned, err := s.checker.AssignedProjects(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("loading assignments: %w", err)
		}

		for p := range assigned {
			filter.ProjectIDs = append(filter.ProjectIDs, p)
		}

		if actor.Role.IsEmployee() {
			creator := actor.ID
			filter.CreatedBy = &creator
		}
	}

	return s.repo.ListTransactions(ctx, filter)
}

// PendingApprovals lists transactions flagged for approval, scoped to the
// reviewer's assigned projects (all projects for admins).
func (s *Service) PendingApprovals(ctx context.Context, actor access.Actor) ([]*Transaction, error) {
	if !actor.Role.Can(access.CapDecideProposal) {
		return nil, ErrForbidden
	}

	pending := StatusPending
	required := true
	filter := ListFilter{
		OrganizationID:   actor.OrganizationID,
		Status:           &pending,
		ApprovalRequired: &required,
		Limit:            200,
	}

	if !actor.Role.IsAdmin() {
		assigned, err := s.checker.AssignedProjects(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("loading assignments: %w", err)
		}

		if len(assigned) == 0 {
			return nil, nil
		}

		for p := range assigned {
			filter.ProjectIDs = append(filter.ProjectIDs, p)
		}
	}

	return s.repo.ListTransactions(ctx, filter)
}

// Decide approves or rejects a pending transaction. The actor must be an
// admin or a manager of the transaction's project; transactions without a
// project are admin-only.
func (s *Service) Decide(ctx context.Context, actor access.Actor, id uuid.UUID, approve bool, comments string) error {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if !actor.Role.IsAdmin() {
		if tx.ProjectID == nil || !s.checker.IsProjectManager(ctx, actor, *tx.ProjectID) {
			return ErrForbidden
		}
	}

	status := StatusRejected
	eventStatus := approval.StatusRejected

	if approve {
		status = StatusApproved
		eventStatus = approval.StatusApproved
	}

	now := time.Now()
	actorID := actor.ID
	event := &approval.Event{
		SubjectType:    approval.SubjectTransaction,
		SubjectID:      id,
		ActorID:        &actorID,
		Level:          "manager",
		Status:         eventStatus,
		Comments:       comments,
		OrganizationID: actor.OrganizationID,
		DecidedAt:      &now,
	}

	return s.repo.DecideTransaction(ctx, id, status, event)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.OrganizationID != actor.OrganizationID {
		return nil, ErrNotFound
	}

	return tx, nil
}

// Upsert inserts or updates a provider-sourced transaction keyed by its
// external id. Used by the Stripe sync and disbursement paths.
func (s *Service) Upsert(ctx context.Context, tx *Transaction) error {
	if tx.ExternalID == nil || *tx.ExternalID == "" {
		return fmt.Errorf("%w: external id is required for upsert", ErrValidation)
	}

	return s.repo.UpsertByExternalID(ctx, tx)
}
