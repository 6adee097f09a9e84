package identity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/http/middleware"
	"github.com/oselabs/cfopilot/internal/identity"
)

type Handler struct {
	svc *identity.Service
}

func NewHandler(svc *identity.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/users", h.createUser)
	r.Post("/assignments", h.assignProject)
	r.Get("/organizations", h.listOrganizations)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createUserRequest struct {
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     access.Role `json:"role"`
	Password string      `json:"password"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !actor.Role.Can(access.CapManageIdentity) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := access.ParseRole(string(req.Role)); err != nil {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), identity.CreateUserParams{
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           req.Role,
		Password:       req.Password,
		OrganizationID: actor.OrganizationID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type assignProjectRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	ProjectID uuid.UUID `json:"project_id"`
}

func (h *Handler) assignProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !actor.Role.Can(access.CapManageIdentity) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req assignProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AssignProject(r.Context(), req.UserID, req.ProjectID, actor.OrganizationID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !actor.Role.Can(access.CapManageIdentity) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	orgs, err := h.svc.ListOrganizations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOrganizationResponseList(orgs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
