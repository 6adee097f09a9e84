package proposal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/http/middleware"
	"github.com/oselabs/cfopilot/internal/proposal"
)

type Handler struct {
	svc *proposal.Service
}

func NewHandler(svc *proposal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/mine", h.mine)
	r.Get("/pending", h.pending)
	r.Get("/history", h.history)
	r.Post("/{id}/decision", h.decide)
	r.Get("/{id}/events", h.events)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, proposal.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, proposal.ErrNotFound):
		http.Error(w, "proposal not found", http.StatusNotFound)
	case errors.Is(err, proposal.ErrAlreadyDecided):
		http.Error(w, "proposal already decided", http.StatusConflict)
	case errors.Is(err, proposal.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type submitRequest struct {
	ProjectID   uuid.UUID `json:"project_id"`
	Department  string    `json:"department"`
	AmountCents int64     `json:"amount_cents"`
	Description string    `json:"description"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Submit(r.Context(), actor, proposal.SubmitParams{
		ProjectID:   req.ProjectID,
		Department:  req.Department,
		AmountCents: req.AmountCents,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	proposals, err := h.svc.Mine(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(proposals)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	proposals, err := h.svc.PendingForReviewer(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(proposals)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	proposals, err := h.svc.HistoryForReviewer(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(proposals)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type decisionRequest struct {
	Decision string `json:"decision"`
	Comments string `json:"comments"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
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

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decision, err := proposal.ParseDecision(req.Decision)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.svc.Decide(r.Context(), actor, id, decision, req.Comments)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.svc.Events(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEventResponseList(events)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
