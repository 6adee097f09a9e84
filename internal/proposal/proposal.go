package proposal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("proposal not found")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("invalid proposal")
	ErrAlreadyDecided = errors.New("proposal already decided")
)

// Status is the proposal lifecycle. Approved and rejected are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decision is a reviewer's verdict on a pending proposal.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove, DecisionReject:
		return Decision(s), nil
	}

	return "", fmt.Errorf("%w: unknown decision %q", ErrValidation, s)
}

func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}

	return StatusRejected
}

// Proposal is a request to spend against a project budget. Amounts are in
// cents. PayoutStatus tracks the downstream disbursement, when one happens.
type Proposal struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Department     string
	AmountCents    int64
	Description    string
	Status         Status
	PayoutStatus   *string
	RequestedBy    uuid.UUID
	ApprovedBy     *uuid.UUID
	OrganizationID uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
