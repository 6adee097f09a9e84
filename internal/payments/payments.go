package payments

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid request")
	ErrProposalNotPayable = errors.New("proposal is not payable")
	ErrPayoutsDisabled    = errors.New("recipient account cannot receive payouts")
)

// Charge is a provider charge reduced to the fields the sync needs.
type Charge struct {
	ID          string
	AmountCents int64
	Currency    string
	Created     time.Time
	Description string
	Status      string
	Refunded    bool
}

// Payout is a provider payout reduced to the fields the sync needs.
type Payout struct {
	ID          string
	AmountCents int64
	Currency    string
	Created     time.Time
	Status      string
}

// Transfer is the platform-to-connected-account leg of a disbursement.
type Transfer struct {
	ID          string
	AmountCents int64
	Destination string
}

// Account carries the payout capability of a connected account.
type Account struct {
	ID             string
	PayoutsEnabled bool
}

type TransferParams struct {
	AmountCents    int64
	Currency       string
	Destination    string
	Description    string
	ProposalID     uuid.UUID
	IdempotencyKey string
}

type PayoutParams struct {
	AmountCents    int64
	Currency       string
	AccountID      string
	ProposalID     uuid.UUID
	IdempotencyKey string
}

// Disbursement is the result of paying out an approved proposal.
type Disbursement struct {
	ProposalID uuid.UUID
	TransferID string
	PayoutID   string
	DryRun     bool
}

// Event is a provider webhook event reduced to what reconciliation needs.
// ProposalID is carried in the provider object's metadata when the object
// originated from a disbursement.
type Event struct {
	Type        string
	ObjectID    string
	AmountCents int64
	ProposalID  *uuid.UUID
}
