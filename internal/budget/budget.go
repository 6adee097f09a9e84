package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound   = errors.New("budget not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid budget")
)

// Budget tracks approved versus actual spend for a department/category,
// optionally scoped to a project. Amounts are in cents.
type Budget struct {
	ID             uuid.UUID
	Department     string
	Category       string
	ProjectID      *uuid.UUID
	Quarter        string
	Year           int
	ApprovedCents  int64
	SpentCents     int64
	OrganizationID uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (b *Budget) RemainingCents() int64 {
	return b.ApprovedCents - b.SpentCents
}

// UsagePercent is spent/approved*100 rounded to two decimals. A budget with
// nothing approved reports zero usage.
func (b *Budget) UsagePercent() float64 {
	if b.ApprovedCents <= 0 {
		return 0
	}

	pct := decimal.NewFromInt(b.SpentCents).
		Div(decimal.NewFromInt(b.ApprovedCents)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return pct.InexactFloat64()
}

// VariancePercent is (spent-approved)/approved*100; positive means over budget.
func (b *Budget) VariancePercent() float64 {
	if b.ApprovedCents <= 0 {
		return 0
	}

	pct := decimal.NewFromInt(b.SpentCents - b.ApprovedCents).
		Div(decimal.NewFromInt(b.ApprovedCents)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return pct.InexactFloat64()
}

func (b *Budget) IsOverBudget() bool {
	return b.SpentCents > b.ApprovedCents
}

func (b *Budget) IsNearLimit() bool {
	return b.UsagePercent() >= 90
}
