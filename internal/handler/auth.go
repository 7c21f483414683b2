package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paani/remedial-learning-app/internal/middleware"
	"github.com/paani/remedial-learning-app/internal/model"
)

type IdentityService interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input *model.LoginInput) (*model.Session, error)
	DestroySession(ctx context.Context, token string) error
	GetUser(ctx context.Context, username string) (*model.UserPublic, error)
}

type AuthHandler struct {
	identity IdentityService
}

func NewAuthHandler(identity IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.With(authMiddleware).Get("/users/{username}", h.GetUser)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.identity.Register(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	session, err := h.identity.Login(r.Context(), &input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Logout succeeds for unknown or already destroyed tokens.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if token == "" {
		writeErrorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.identity.DestroySession(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username, err := parsePathParam(r, "username")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.identity.GetUser(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
