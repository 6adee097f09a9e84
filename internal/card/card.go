package card

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("card not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid card")
)

type Status string

const (
	StatusActive Status = "active"
	StatusFrozen Status = "frozen"
	StatusClosed Status = "closed"
)

type Type string

const (
	TypeVirtual  Type = "virtual"
	TypePhysical Type = "physical"
)

// CorporateCard is a spending card issued to a user. Only the last four
// digits of the number are ever stored.
type CorporateCard struct {
	ID                    uuid.UUID
	CardNumber            string
	CardName              string
	UserID                *uuid.UUID
	OrganizationID        uuid.UUID
	MonthlyLimitCents     int64
	TransactionLimitCents int64
	BalanceCents          int64
	Status                Status
	CardType              Type
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CardTransaction links a transaction to the card it was charged on.
type CardTransaction struct {
	ID            uuid.UUID
	CardID        uuid.UUID
	TransactionID uuid.UUID
	AmountCents   int64
	Merchant      string
	Category      string
	Status        string
	CreatedAt     time.Time
}
