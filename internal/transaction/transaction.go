package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("transaction not found")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("invalid transaction")
	ErrAlreadyDecided = errors.New("transaction already decided")
)

// Status is the lifecycle state of a transaction. Locally created rows move
// pending -> approved/rejected; Stripe-sourced rows carry the provider's
// status and are advanced by webhook events.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSucceeded Status = "succeeded"
	StatusRefunded  Status = "refunded"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
)

// Transaction is a financial movement. Amount is in cents. ExternalID is the
// payment provider's id (charge, payout or transfer) and is nil for manual
// entries; webhook reconciliation matches on it.
type Transaction struct {
	ID               uuid.UUID
	ExternalID       *string
	AmountCents      int64
	Currency         string
	Date             time.Time
	Category         string
	Merchant         string
	Status           Status
	Description      string
	PaymentMethod    string
	FraudFlag        bool
	ApprovalRequired bool
	EmployeeID       *uuid.UUID
	CreatedBy        *uuid.UUID
	ProjectID        *uuid.UUID
	CardID           *uuid.UUID
	OrganizationID   uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
