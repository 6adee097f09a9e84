package authapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oselabs/cfopilot/internal/auth"
	"github.com/oselabs/cfopilot/internal/identity"
)

type Handler struct {
	users  *identity.Service
	issuer *auth.TokenIssuer
}

func NewHandler(users *identity.Service, issuer *auth.TokenIssuer) *Handler {
	return &Handler{users: users, issuer: issuer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID             string `json:"id"`
		Email          string `json:"email"`
		FullName       string `json:"full_name"`
		Role           string `json:"role"`
		OrganizationID string `json:"organization_id"`
	} `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.issuer.Issue(user.ID, user.OrganizationID, user.Role)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := loginResponse{Token: token}
	resp.User.ID = user.ID.String()
	resp.User.Email = user.Email
	resp.User.FullName = user.FullName
	resp.User.Role = string(user.Role)
	resp.User.OrganizationID = user.OrganizationID.String()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
