package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/transaction"
)

// API is the payment provider surface the service depends on. The real
// implementation wraps the Stripe client; dry-run swaps in fabricated ids.
//
//go:generate mockgen -source=service.go -destination=api_mock.go -package=payments
type API interface {
	Account(ctx context.Context, accountID string) (*Account, error)
	ListCharges(ctx context.Context, since time.Time) ([]*Charge, error)
	ListPayouts(ctx context.Context, since time.Time) ([]*Payout, error)
	CreateTransfer(ctx context.Context, params TransferParams) (*Transfer, error)
	CreatePayout(ctx context.Context, params PayoutParams) (*Payout, error)
}

// DisbursableProposal joins an approved proposal with its requester's
// connected account.
type DisbursableProposal struct {
	ID              uuid.UUID
	AmountCents     int64
	Description     string
	Status          string
	PayoutStatus    *string
	RequestedBy     uuid.UUID
	StripeAccountID *string
	OrganizationID  uuid.UUID
	ProjectID       uuid.UUID
}

type Repository interface {
	GetDisbursableProposal(ctx context.Context, proposalID uuid.UUID) (*DisbursableProposal, error)
	SetProposalPayoutStatus(ctx context.Context, proposalID uuid.UUID, status string) error
	// ApplyPayoutPaid marks the payout's transaction paid, closes the linked
	// proposal's payout, and books the amount against the project budget, all
	// in one database transaction. Returns ErrNotFound when no transaction
	// row matches the payout's external id.
	ApplyPayoutPaid(ctx context.Context, externalID string, proposalID *uuid.UUID, amountCents int64) error
	SetTransactionStatusByExternalID(ctx context.Context, externalID string, status string) error
}

// TransactionWriter upserts provider-sourced transaction rows.
type TransactionWriter interface {
	Upsert(ctx context.Context, tx *transaction.Transaction) error
}

type Service struct {
	api        API
	repo       Repository
	writer     TransactionWriter
	autoPayout bool
}

func NewService(api API, repo Repository, writer TransactionWriter, autoPayout bool) *Service {
	return &Service{api: api, repo: repo, writer: writer, autoPayout: autoPayout}
}

type SyncResult struct {
	Charges int
	Payouts int
}

// SyncRecent pulls the provider's charges and payouts for the trailing
// window and upserts them as transactions keyed by external id. Re-running
// the sync refreshes rows instead of duplicating them.
func (s *Service) SyncRecent(ctx context.Context, actor access.Actor, days int) (*SyncResult, error) {
	if !actor.Role.Can(access.CapSyncPayments) {
		return nil, ErrForbidden
	}

	if days <= 0 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days)
	result := new(SyncResult)

	charges, err := s.api.ListCharges(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	for _, ch := range charges {
		externalID := ch.ID
		status := transaction.StatusSucceeded

		if ch.Refunded {
			status = transaction.StatusRefunded
		} else if ch.Status != "succeeded" {
			status = transaction.Status(ch.Status)
		}

		tx := &transaction.Transaction{
			ExternalID:     &externalID,
			AmountCents:    ch.AmountCents,
			Currency:       ch.Currency,
			Date:           ch.Created,
			Category:       "Payments",
			Merchant:       "Stripe",
			Status:         status,
			Description:    ch.Description,
			PaymentMethod:  "stripe",
			OrganizationID: actor.OrganizationID,
		}
		if err := s.writer.Upsert(ctx, tx); err != nil {
			return nil, fmt.Errorf("upserting charge %s: %w", ch.ID, err)
		}

		result.Charges++
	}

	payouts, err := s.api.ListPayouts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}

	for _, po := range payouts {
		externalID := po.ID

		tx := &transaction.Transaction{
			ExternalID:     &externalID,
			AmountCents:    po.AmountCents,
			Currency:       po.Currency,
			Date:           po.Created,
			Category:       "Payouts",
			Merchant:       "Stripe",
			Status:         transaction.Status(po.Status),
			Description:    "Stripe payout",
			PaymentMethod:  "stripe",
			OrganizationID: actor.OrganizationID,
		}
		if err := s.writer.Upsert(ctx, tx); err != nil {
			return nil, fmt.Errorf("upserting payout %s: %w", po.ID, err)
		}

		result.Payouts++
	}

	slog.Info("payment sync complete", "organization_id", actor.OrganizationID, "charges", result.Charges, "payouts", result.Payouts)

	return result, nil
}

// Disburse pays out an approved proposal to its requester's connected
// account. The transfer and payout reuse the proposal id as idempotency key,
// so retries cannot double-pay.
func (s *Service) Disburse(ctx context.Context, actor access.Actor, proposalID uuid.UUID) (*Disbursement, error) {
	if !actor.Role.Can(access.CapDisburse) {
		return nil, ErrForbidden
	}

	p, err := s.repo.GetDisbursableProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if p.OrganizationID != actor.OrganizationID {
		return nil, ErrNotFound
	}

	if p.Status != "approved" {
		return nil, fmt.Errorf("%w: status is %s", ErrProposalNotPayable, p.Status)
	}

	if p.PayoutStatus != nil && (*p.PayoutStatus == "paid" || *p.PayoutStatus == "processing") {
		return nil, fmt.Errorf("%w: payout already %s", ErrProposalNotPayable, *p.PayoutStatus)
	}

	if p.StripeAccountID == nil || *p.StripeAccountID == "" {
		return nil, fmt.Errorf("%w: requester has no connected account", ErrValidation)
	}

	account, err := s.api.Account(ctx, *p.StripeAccountID)
	if err != nil {
		return nil, fmt.Errorf("checking recipient account: %w", err)
	}

	if !account.PayoutsEnabled {
		return nil, ErrPayoutsDisabled
	}

	idempotencyKey := "disburse_" + proposalID.String()

	tr, err := s.api.CreateTransfer(ctx, TransferParams{
		AmountCents:    p.AmountCents,
		Currency:       "usd",
		Destination:    *p.StripeAccountID,
		Description:    p.Description,
		ProposalID:     proposalID,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	_, dryRun := s.api.(*DryRunAPI)
	disbursement := &Disbursement{ProposalID: proposalID, TransferID: tr.ID, DryRun: dryRun}

	// The recorded row is keyed by the id the provider will reference in
	// webhooks: the payout id when one exists, the transfer id otherwise.
	externalID := tr.ID

	if s.autoPayout {
		po, err := s.api.CreatePayout(ctx, PayoutParams{
			AmountCents:    p.AmountCents,
			Currency:       "usd",
			AccountID:      *p.StripeAccountID,
			ProposalID:     proposalID,
			IdempotencyKey: idempotencyKey + "_po",
		})
		if err != nil {
			return nil, fmt.Errorf("creating payout: %w", err)
		}

		disbursement.PayoutID = po.ID
		externalID = po.ID
	}

	requestedBy := p.RequestedBy
	txRow := &transaction.Transaction{
		ExternalID:     &externalID,
		AmountCents:    p.AmountCents,
		Currency:       "USD",
		Date:           time.Now(),
		Category:       "Disbursements",
		Merchant:       "Stripe",
		Status:         transaction.StatusPending,
		Description:    p.Description,
		PaymentMethod:  "stripe",
		EmployeeID:     &requestedBy,
		ProjectID:      &p.ProjectID,
		OrganizationID: p.OrganizationID,
	}
	if err := s.writer.Upsert(ctx, txRow); err != nil {
		return nil, fmt.Errorf("recording disbursement: %w", err)
	}

	if err := s.repo.SetProposalPayoutStatus(ctx, proposalID, "processing"); err != nil {
		return nil, fmt.Errorf("updating proposal payout status: %w", err)
	}

	slog.Info("disbursement created",
		"proposal_id", proposalID,
		"transfer_id", disbursement.TransferID,
		"payout_id", disbursement.PayoutID,
		"amount_cents", p.AmountCents,
	)

	return disbursement, nil
}
