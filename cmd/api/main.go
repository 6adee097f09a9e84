package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/auth"
	"github.com/oselabs/cfopilot/internal/budget"
	budgetStore "github.com/oselabs/cfopilot/internal/budget/store"
	"github.com/oselabs/cfopilot/internal/card"
	cardStore "github.com/oselabs/cfopilot/internal/card/store"
	"github.com/oselabs/cfopilot/internal/config"
	"github.com/oselabs/cfopilot/internal/database"
	cfoHttp "github.com/oselabs/cfopilot/internal/http"
	authHandler "github.com/oselabs/cfopilot/internal/http/authapi"
	budgetHandler "github.com/oselabs/cfopilot/internal/http/budget"
	cardHandler "github.com/oselabs/cfopilot/internal/http/card"
	identityHandler "github.com/oselabs/cfopilot/internal/http/identity"
	insightHandler "github.com/oselabs/cfopilot/internal/http/insight"
	invoiceHandler "github.com/oselabs/cfopilot/internal/http/invoice"
	paymentsHandler "github.com/oselabs/cfopilot/internal/http/payments"
	proposalHandler "github.com/oselabs/cfopilot/internal/http/proposal"
	txHandler "github.com/oselabs/cfopilot/internal/http/transaction"
	"github.com/oselabs/cfopilot/internal/identity"
	identityStore "github.com/oselabs/cfopilot/internal/identity/store"
	"github.com/oselabs/cfopilot/internal/insight"
	insightStore "github.com/oselabs/cfopilot/internal/insight/store"
	"github.com/oselabs/cfopilot/internal/invoice"
	invoiceStore "github.com/oselabs/cfopilot/internal/invoice/store"
	"github.com/oselabs/cfopilot/internal/llm"
	"github.com/oselabs/cfopilot/internal/payments"
	paymentsStore "github.com/oselabs/cfopilot/internal/payments/store"
	"github.com/oselabs/cfopilot/internal/proposal"
	proposalStore "github.com/oselabs/cfopilot/internal/proposal/store"
	"github.com/oselabs/cfopilot/internal/transaction"
	txStore "github.com/oselabs/cfopilot/internal/transaction/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	identityService := identity.NewService(identityStore.New(db))
	checker := access.NewChecker(identityService, cfg.Access.FailOpenUnscopedBudgets)

	var stripeAPI payments.API = payments.NewStripeAPI(cfg.Stripe.APIKey)
	if cfg.Stripe.DryRun {
		stripeAPI = payments.NewDryRunAPI(stripeAPI)
	}

	var (
		budgetService   = budget.NewService(budgetStore.New(db), checker)
		proposalService = proposal.NewService(proposalStore.New(db), checker)
		cardService     = card.NewService(cardStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		txService       = transaction.NewService(txStore.New(db), checker, cardService, invoiceService)
		paymentsService = payments.NewService(stripeAPI, paymentsStore.New(db), txService, cfg.Stripe.AutoPayout)
		reconciler      = payments.NewReconciler(paymentsStore.New(db))
		insightService  = insight.NewService(insightStore.New(db), txService, invoiceService, budgetService)
		model           = llm.NewClient(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
	)

	var (
		authH     = authHandler.NewHandler(identityService, issuer)
		budgetH   = budgetHandler.NewHandler(budgetService)
		proposalH = proposalHandler.NewHandler(proposalService)
		txH       = txHandler.NewHandler(txService)
		cardH     = cardHandler.NewHandler(cardService)
		invoiceH  = invoiceHandler.NewHandler(invoiceService)
		insightH  = insightHandler.NewHandler(insightService, model)
		paymentsH = paymentsHandler.NewHandler(paymentsService, reconciler, cfg.Stripe.WebhookSecret)
		identityH = identityHandler.NewHandler(identityService)
	)

	router := cfoHttp.New(issuer, authH, budgetH, proposalH, txH, cardH, invoiceH, insightH, paymentsH, identityH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "stripe_dry_run", cfg.Stripe.DryRun)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
