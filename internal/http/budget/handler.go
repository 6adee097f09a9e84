package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/budget"
	"github.com/oselabs/cfopilot/internal/http/middleware"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/usage", h.usage)
	r.Get("/analysis", h.analysis)
	r.Get("/filter-options", h.filterOptions)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, budget.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, budget.ErrNotFound):
		http.Error(w, "budget not found", http.StatusNotFound)
	case errors.Is(err, budget.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createBudgetRequest struct {
	Department    string    `json:"department"`
	Category      string    `json:"category"`
	ProjectID     uuid.UUID `json:"project_id"`
	Quarter       string    `json:"quarter"`
	Year          int       `json:"year"`
	ApprovedCents int64     `json:"approved_cents"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), actor, budget.CreateParams{
		Department:    req.Department,
		Category:      req.Category,
		ProjectID:     req.ProjectID,
		Quarter:       req.Quarter,
		Year:          req.Year,
		ApprovedCents: req.ApprovedCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := budget.ListFilter{}

	if s := r.URL.Query().Get("department"); s != "" {
		filter.Department = &s
	}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = &id
		}
	}

	if s := r.URL.Query().Get("quarter"); s != "" {
		filter.Quarter = &s
	}

	if s := r.URL.Query().Get("year"); s != "" {
		if year, err := strconv.Atoi(s); err == nil {
			filter.Year = &year
		}
	}

	budgets, err := h.svc.List(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(budgets)); err != nil {
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

	b, err := h.svc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBudgetRequest struct {
	Department    *string `json:"department,omitempty"`
	Category      *string `json:"category,omitempty"`
	ApprovedCents *int64  `json:"approved_cents,omitempty"`
	SpentCents    *int64  `json:"spent_cents,omitempty"`
	Quarter       *string `json:"quarter,omitempty"`
	Year          *int    `json:"year,omitempty"`
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

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Update(r.Context(), actor, id, budget.UpdateParams{
		Department:    req.Department,
		Category:      req.Category,
		ApprovedCents: req.ApprovedCents,
		SpentCents:    req.SpentCents,
		Quarter:       req.Quarter,
		Year:          req.Year,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) usage(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	usage, err := h.svc.Usage(r.Context(), actor, budget.ListFilter{})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toUsageResponse(usage)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) analysis(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	report, err := h.svc.Analysis(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toVarianceResponseList(report)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	opts, err := h.svc.FilterOptions(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(opts); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
