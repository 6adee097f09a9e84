package payments

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/oselabs/cfopilot/internal/http/middleware"
	"github.com/oselabs/cfopilot/internal/payments"
)

const maxWebhookBody = 64 * 1024

type Handler struct {
	svc           *payments.Service
	reconciler    *payments.Reconciler
	webhookSecret string
}

func NewHandler(svc *payments.Service, reconciler *payments.Reconciler, webhookSecret string) *Handler {
	return &Handler{svc: svc, reconciler: reconciler, webhookSecret: webhookSecret}
}

// Routes registers the authenticated payment endpoints. The webhook endpoint
// is mounted separately because the provider signs requests instead of
// sending a bearer token.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/sync", h.sync)
	r.Post("/disburse/{proposalID}", h.disburse)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payments.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, payments.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, payments.ErrProposalNotPayable):
		http.Error(w, "proposal is not payable", http.StatusConflict)
	case errors.Is(err, payments.ErrPayoutsDisabled):
		http.Error(w, "payouts are disabled for the connected account", http.StatusUnprocessableEntity)
	case errors.Is(err, payments.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	days := 0
	if s := r.URL.Query().Get("days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			days = n
		}
	}

	result, err := h.svc.SyncRecent(r.Context(), actor, days)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSyncResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) disburse(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	proposalID, err := uuid.Parse(chi.URLParam(r, "proposalID"))
	if err != nil {
		http.Error(w, "invalid proposal id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Disburse(r.Context(), actor, proposalID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDisbursementResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// webhookObject is the subset of a provider object shared by charges,
// payment intents and payouts.
type webhookObject struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}

// webhookEnvelope mirrors the provider's event shape for the unverified
// development path.
type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// Webhook verifies the provider signature and hands the event to the
// reconciler. Without a configured secret the payload is parsed unverified,
// for local development only. A non-2xx response makes the provider retry,
// so only transient failures return one.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var (
		eventType string
		raw       []byte
	)

	if h.webhookSecret != "" {
		event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.webhookSecret)
		if err != nil {
			slog.Warn("webhook signature verification failed", "error", err)
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}

		eventType = string(event.Type)
		raw = event.Data.Raw
	} else {
		slog.Warn("webhook secret not configured, accepting unverified event")

		var envelope webhookEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			http.Error(w, "malformed event", http.StatusBadRequest)
			return
		}

		eventType = envelope.Type
		raw = envelope.Data.Object
	}

	var obj webhookObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		http.Error(w, "malformed event object", http.StatusBadRequest)
		return
	}

	local := payments.Event{
		Type:        eventType,
		ObjectID:    obj.ID,
		AmountCents: obj.Amount,
	}

	if s, ok := obj.Metadata["proposal_id"]; ok {
		if id, err := uuid.Parse(s); err == nil {
			local.ProposalID = &id
		}
	}

	if err := h.reconciler.Process(r.Context(), local); err != nil {
		slog.Error("webhook reconciliation failed", "type", local.Type, "object_id", local.ObjectID, "error", err)
		http.Error(w, "reconciliation failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
