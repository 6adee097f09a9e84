package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/budget"
	budgetStore "github.com/oselabs/cfopilot/internal/budget/store"
	"github.com/oselabs/cfopilot/internal/card"
	cardStore "github.com/oselabs/cfopilot/internal/card/store"
	"github.com/oselabs/cfopilot/internal/config"
	"github.com/oselabs/cfopilot/internal/database"
	"github.com/oselabs/cfopilot/internal/identity"
	identityStore "github.com/oselabs/cfopilot/internal/identity/store"
	"github.com/oselabs/cfopilot/internal/insight"
	insightStore "github.com/oselabs/cfopilot/internal/insight/store"
	"github.com/oselabs/cfopilot/internal/invoice"
	invoiceStore "github.com/oselabs/cfopilot/internal/invoice/store"
	"github.com/oselabs/cfopilot/internal/payments"
	paymentsStore "github.com/oselabs/cfopilot/internal/payments/store"
	"github.com/oselabs/cfopilot/internal/transaction"
	txStore "github.com/oselabs/cfopilot/internal/transaction/store"
)

// The nightly job pulls fresh provider activity, sweeps overdue invoices and
// refreshes budget alerts for one organization.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	orgID, err := uuid.Parse(cfg.Sync.OrganizationID)
	if err != nil {
		slog.Error("SYNC_ORGANIZATION_ID is required", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var stripeAPI payments.API = payments.NewStripeAPI(cfg.Stripe.APIKey)
	if cfg.Stripe.DryRun {
		stripeAPI = payments.NewDryRunAPI(stripeAPI)
	}

	var (
		identityService = identity.NewService(identityStore.New(db))
		checker         = access.NewChecker(identityService, cfg.Access.FailOpenUnscopedBudgets)
		budgetService   = budget.NewService(budgetStore.New(db), checker)
		cardService     = card.NewService(cardStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		txService       = transaction.NewService(txStore.New(db), checker, cardService, invoiceService)
		paymentsService = payments.NewService(stripeAPI, paymentsStore.New(db), txService, cfg.Stripe.AutoPayout)
		insightService  = insight.NewService(insightStore.New(db), txService, invoiceService, budgetService)
	)

	// The job acts with admin scope inside the configured organization.
	actor := access.Actor{ID: uuid.Nil, OrganizationID: orgID, Role: access.RoleAdmin}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := paymentsService.SyncRecent(ctx, actor, cfg.Sync.Days)
	if err != nil {
		slog.Error("payment sync failed", "error", err)
		os.Exit(1)
	}
	slog.Info("synced provider activity", "charges", result.Charges, "payouts", result.Payouts)

	overdue, err := invoiceService.Overdue(ctx, actor)
	if err != nil {
		slog.Error("overdue sweep failed", "error", err)
		os.Exit(1)
	}
	slog.Info("swept overdue invoices", "count", overdue.Count, "total_cents", overdue.TotalCents)

	alerts, err := insightService.SweepBudgetAlerts(ctx, actor)
	if err != nil {
		slog.Error("budget alert sweep failed", "error", err)
		os.Exit(1)
	}
	slog.Info("refreshed budget alerts", "created", len(alerts))
}
