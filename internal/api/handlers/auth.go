package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/service"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Token     string `json:"token,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.accounts.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"message": "Registered successfully"})
	case errors.Is(err, domain.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing fields")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, "Email already registered")
	default:
		slog.Error("register failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.accounts.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
		// fall through to the success response below
	case errors.Is(err, domain.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing fields")
		return
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(w, http.StatusBadRequest, "User not found")
		return
	case errors.Is(err, domain.ErrInvalidPassword):
		respondError(w, http.StatusBadRequest, "Invalid password")
		return
	default:
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := LoginResponse{
		Message:   "Login success",
		UserName:  user.Name,
		UserEmail: user.Email,
	}

	// The token is additive; the login contract stays valid without it.
	token, err := h.accounts.SessionToken(user)
	if err != nil {
		slog.Warn("session token issue failed", "error", err)
	} else {
		resp.Token = token
	}

	respondJSON(w, http.StatusOK, resp)
}
