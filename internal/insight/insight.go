package insight

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// MerchantSpend is one row of the top-merchants breakdown.
type MerchantSpend struct {
	Merchant   string
	TotalCents int64
}

// SpendingSummary aggregates an organization's transactions over a window.
type SpendingSummary struct {
	WindowDays      int
	TotalCents      int64
	Count           int
	AverageCents    int64
	ByCategoryCents map[string]int64
	ByStatus        map[string]int
	TopMerchants    []MerchantSpend
}

// CashflowForecast projects burn from the trailing 90 days of spend.
type CashflowForecast struct {
	MonthlyBurnCents        int64
	ProjectedSpendCents     int64
	PendingReceivablesCents int64
	NetPositionCents        int64
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Alert struct {
	ID             uuid.UUID
	AlertType      string
	Severity       Severity
	Message        string
	IsRead         bool
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}

// ChatEntry is one exchange with the assistant, kept for audit and context.
type ChatEntry struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	OrganizationID uuid.UUID
	Message        string
	Response       string
	AgentType      string
	CreatedAt      time.Time
}

// PolicyDocument is a spend-policy snippet surfaced by the policy agent.
type PolicyDocument struct {
	ID             uuid.UUID
	Content        string
	Category       string
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}
