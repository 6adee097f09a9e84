package card

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/card"
	"github.com/oselabs/cfopilot/internal/http/middleware"
)

type Handler struct {
	svc *card.Service
}

func NewHandler(svc *card.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/freeze", h.freeze)
	r.Get("/{id}/transactions", h.transactions)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, card.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, card.ErrNotFound):
		http.Error(w, "card not found", http.StatusNotFound)
	case errors.Is(err, card.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createCardRequest struct {
	CardName              string     `json:"card_name"`
	LastFour              string     `json:"last_four"`
	UserID                *uuid.UUID `json:"user_id,omitempty"`
	MonthlyLimitCents     int64      `json:"monthly_limit_cents"`
	TransactionLimitCents int64      `json:"transaction_limit_cents"`
	CardType              card.Type  `json:"card_type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), actor, card.CreateParams{
		CardName:              req.CardName,
		LastFour:              req.LastFour,
		UserID:                req.UserID,
		MonthlyLimitCents:     req.MonthlyLimitCents,
		TransactionLimitCents: req.TransactionLimitCents,
		CardType:              req.CardType,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cards, err := h.svc.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(cards)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCardRequest struct {
	MonthlyLimitCents     *int64       `json:"monthly_limit_cents,omitempty"`
	TransactionLimitCents *int64       `json:"transaction_limit_cents,omitempty"`
	Status                *card.Status `json:"status,omitempty"`
	UserID                *uuid.UUID   `json:"user_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), actor, id, card.UpdateParams{
		MonthlyLimitCents:     req.MonthlyLimitCents,
		TransactionLimitCents: req.TransactionLimitCents,
		Status:                req.Status,
		UserID:                req.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) freeze(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Freeze(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	cts, err := h.svc.Transactions(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCardTransactionList(cts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
