package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/config"
	"github.com/oselabs/cfopilot/internal/database"
	"github.com/oselabs/cfopilot/internal/identity"
	identityStore "github.com/oselabs/cfopilot/internal/identity/store"
	"github.com/oselabs/cfopilot/internal/payments"
	paymentsStore "github.com/oselabs/cfopilot/internal/payments/store"
	"github.com/oselabs/cfopilot/internal/transaction"
	txStore "github.com/oselabs/cfopilot/internal/transaction/store"
)

// Walks an approved proposal through a full disbursement without touching
// the provider: a dry-run transfer and payout, then the payout.paid webhook
// the provider would send, fed straight into the reconciler.
func main() {
	proposalFlag := flag.String("proposal", "", "id of the approved proposal to pay out")
	flag.Parse()

	proposalID, err := uuid.Parse(*proposalFlag)
	if err != nil {
		slog.Error("a valid -proposal id is required", "error", err)
		os.Exit(1)
	}

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

	var (
		identityService = identity.NewService(identityStore.New(db))
		checker         = access.NewChecker(identityService, cfg.Access.FailOpenUnscopedBudgets)
		txService       = transaction.NewService(txStore.New(db), checker, nil, nil)
		store           = paymentsStore.New(db)
		api             = payments.NewDryRunAPI(nil)
		paymentsService = payments.NewService(api, store, txService, true)
		reconciler      = payments.NewReconciler(store)
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := store.GetDisbursableProposal(ctx, proposalID)
	if err != nil {
		slog.Error("failed to load proposal", "error", err)
		os.Exit(1)
	}

	actor := access.Actor{ID: uuid.Nil, OrganizationID: p.OrganizationID, Role: access.RoleAdmin}

	d, err := paymentsService.Disburse(ctx, actor, proposalID)
	if err != nil {
		slog.Error("disbursement failed", "error", err)
		os.Exit(1)
	}
	slog.Info("disbursed", "transfer_id", d.TransferID, "payout_id", d.PayoutID, "dry_run", d.DryRun)

	event := payments.Event{
		Type:        "payout.paid",
		ObjectID:    d.PayoutID,
		AmountCents: p.AmountCents,
		ProposalID:  &proposalID,
	}
	if err := reconciler.Process(ctx, event); err != nil {
		slog.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("payout settled", "proposal_id", proposalID)
}
