package insight

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/budget"
	"github.com/oselabs/cfopilot/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=insight
type Repository interface {
	CreateAlert(ctx context.Context, a *Alert) error
	ListAlerts(ctx context.Context, organizationID uuid.UUID, unreadOnly bool) ([]*Alert, error)
	MarkAlertRead(ctx context.Context, id, organizationID uuid.UUID) error
	CreateChatEntry(ctx context.Context, e *ChatEntry) error
	ListChatEntries(ctx context.Context, organizationID uuid.UUID, userID uuid.UUID, limit int) ([]*ChatEntry, error)
	CreatePolicyDocument(ctx context.Context, doc *PolicyDocument) error
	ListPolicyDocuments(ctx context.Context, organizationID uuid.UUID) ([]*PolicyDocument, error)
}

// TransactionSource feeds the aggregations without coupling to the
// transaction store directly.
type TransactionSource interface {
	List(ctx context.Context, actor access.Actor, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// ReceivablesSource totals unpaid invoices for the cashflow forecast.
type ReceivablesSource interface {
	PendingReceivables(ctx context.Context, actor access.Actor) (int64, error)
}

// BudgetSource feeds the budget alert sweep.
type BudgetSource interface {
	List(ctx context.Context, actor access.Actor, filter budget.ListFilter) ([]*budget.Budget, error)
}

type Service struct {
	repo         Repository
	transactions TransactionSource
	receivables  ReceivablesSource
	budgets      BudgetSource
}

func NewService(repo Repository, transactions TransactionSource, receivables ReceivablesSource, budgets BudgetSource) *Service {
	return &Service{
		repo:         repo,
		transactions: transactions,
		receivables:  receivables,
		budgets:      budgets,
	}
}

// SpendingSummary aggregates the actor's visible transactions over the last
// windowDays days.
func (s *Service) SpendingSummary(ctx context.Context, actor access.Actor, windowDays int) (*SpendingSummary, error) {
	if windowDays <= 0 {
		windowDays = 30
	}

	start := time.Now().AddDate(0, 0, -windowDays)

	txs, err := s.transactions.List(ctx, actor, transaction.ListFilter{StartDate: &start})
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	summary := &SpendingSummary{
		WindowDays:      windowDays,
		ByCategoryCents: make(map[string]int64),
		ByStatus:        make(map[string]int),
	}

	merchants := make(map[string]int64)

	for _, tx := range txs {
		summary.TotalCents += tx.AmountCents
		summary.Count++
		summary.ByStatus[string(tx.Status)]++

		category := tx.Category
		if category == "" {
			category = "Uncategorized"
		}

		summary.ByCategoryCents[category] += tx.AmountCents

		if tx.Merchant != "" {
			merchants[tx.Merchant] += tx.AmountCents
		}
	}

	if summary.Count > 0 {
		avg := decimal.NewFromInt(summary.TotalCents).
			Div(decimal.NewFromInt(int64(summary.Count))).
			Round(0)
		summary.AverageCents = avg.IntPart()
	}

	for merchant, total := range merchants {
		summary.TopMerchants = append(summary.TopMerchants, MerchantSpend{Merchant: merchant, TotalCents: total})
	}

	sort.Slice(summary.TopMerchants, func(i, j int) bool {
		return summary.TopMerchants[i].TotalCents > summary.TopMerchants[j].TotalCents
	})

	if len(summary.TopMerchants) > 5 {
		summary.TopMerchants = summary.TopMerchants[:5]
	}

	return summary, nil
}

// CashflowForecast derives a monthly burn from the trailing 90 days of spend,
// projects it over the requested horizon (default 3 months) and nets the
// projection against pending receivables.
func (s *Service) CashflowForecast(ctx context.Context, actor access.Actor, months int) (*CashflowForecast, error) {
	if months <= 0 {
		months = 3
	}

	start := time.Now().AddDate(0, 0, -90)

	txs, err := s.transactions.List(ctx, actor, transaction.ListFilter{StartDate: &start})
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	var total int64
	for _, tx := range txs {
		total += tx.AmountCents
	}

	burn := decimal.NewFromInt(total).Div(decimal.NewFromInt(3)).Round(0).IntPart()
	projected := burn * int64(months)

	receivables, err := s.receivables.PendingReceivables(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("loading receivables: %w", err)
	}

	return &CashflowForecast{
		MonthlyBurnCents:        burn,
		ProjectedSpendCents:     projected,
		PendingReceivablesCents: receivables,
		NetPositionCents:        receivables - projected,
	}, nil
}

// SweepBudgetAlerts raises an alert for each budget at or over its limit.
// Returns the alerts created.
func (s *Service) SweepBudgetAlerts(ctx context.Context, actor access.Actor) ([]*Alert, error) {
	budgets, err := s.budgets.List(ctx, actor, budget.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}

	var created []*Alert

	for _, b := range budgets {
		var (
			severity Severity
			message  string
		)

		switch {
		case b.IsOverBudget():
			severity = SeverityHigh
			message = fmt.Sprintf("%s budget exceeded: %.1f%% used", b.Department, b.UsagePercent())
		case b.IsNearLimit():
			severity = SeverityMedium
			message = fmt.Sprintf("%s budget near limit: %.1f%% used", b.Department, b.UsagePercent())
		default:
			continue
		}

		a := &Alert{
			AlertType:      "budget",
			Severity:       severity,
			Message:        message,
			OrganizationID: actor.OrganizationID,
		}
		if err := s.repo.CreateAlert(ctx, a); err != nil {
			return nil, fmt.Errorf("creating alert: %w", err)
		}

		created = append(created, a)
	}

	return created, nil
}

func (s *Service) Alerts(ctx context.Context, actor access.Actor, unreadOnly bool) ([]*Alert, error) {
	return s.repo.ListAlerts(ctx, actor.OrganizationID, unreadOnly)
}

func (s *Service) MarkAlertRead(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	return s.repo.MarkAlertRead(ctx, id, actor.OrganizationID)
}

func (s *Service) AddPolicyDocument(ctx context.Context, actor access.Actor, content, category string) (*PolicyDocument, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrForbidden
	}

	doc := &PolicyDocument{
		Content:        content,
		Category:       category,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.CreatePolicyDocument(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Service) ChatHistory(ctx context.Context, actor access.Actor, limit int) ([]*ChatEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	return s.repo.ListChatEntries(ctx, actor.OrganizationID, actor.ID, limit)
}
