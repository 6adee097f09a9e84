// Package approval holds the append-only audit trail shared by the proposal
// and transaction decision flows.
package approval

import (
	"time"

	"github.com/google/uuid"
)

// SubjectType identifies which entity an audit event belongs to.
type SubjectType string

const (
	SubjectProposal    SubjectType = "proposal"
	SubjectTransaction SubjectType = "transaction"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Event is one decision-trail record. Events are only ever inserted, in the
// same database transaction as the state change they describe.
type Event struct {
	ID             uuid.UUID
	SubjectType    SubjectType
	SubjectID      uuid.UUID
	ActorID        *uuid.UUID
	Level          string
	Status         Status
	Comments       string
	OrganizationID uuid.UUID
	DecidedAt      *time.Time
	CreatedAt      time.Time
}
