package insight

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/http/middleware"
	"github.com/oselabs/cfopilot/internal/insight"
)

type Handler struct {
	svc   *insight.Service
	model insight.Invoker
}

func NewHandler(svc *insight.Service, model insight.Invoker) *Handler {
	return &Handler{svc: svc, model: model}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/cashflow", h.cashflow)
	r.Get("/alerts", h.alerts)
	r.Post("/alerts/sweep", h.sweepAlerts)
	r.Post("/alerts/{id}/read", h.markAlertRead)
	r.Post("/chat", h.chat)
	r.Get("/chat/history", h.chatHistory)
	r.Post("/policies", h.addPolicy)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, insight.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, insight.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	windowDays := 0
	if s := r.URL.Query().Get("window_days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			windowDays = n
		}
	}

	summary, err := h.svc.SpendingSummary(r.Context(), actor, windowDays)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) cashflow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	months := 0
	if s := r.URL.Query().Get("months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			months = n
		}
	}

	forecast, err := h.svc.CashflowForecast(r.Context(), actor, months)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toForecastResponse(forecast)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	alerts, err := h.svc.Alerts(r.Context(), actor, unreadOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAlertResponseList(alerts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) sweepAlerts(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	alerts, err := h.svc.SweepBudgetAlerts(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAlertResponseList(alerts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markAlertRead(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.MarkAlertRead(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Chat(r.Context(), actor, h.model, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChatResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	entries, err := h.svc.ChatHistory(r.Context(), actor, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChatResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type policyRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *Handler) addPolicy(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req policyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	doc, err := h.svc.AddPolicyDocument(r.Context(), actor, req.Content, req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPolicyResponse(doc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
