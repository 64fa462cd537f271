package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhishek/learngrow/internal/api/middleware"
	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/service"
)

type ChatbotHandler struct {
	chat *service.ChatService
}

func NewChatbotHandler(chat *service.ChatService) *ChatbotHandler {
	return &ChatbotHandler{chat: chat}
}

type ChatbotRequest struct {
	Email    string `json:"email"`
	Question string `json:"question"`
}

type ChatbotResponse struct {
	Answer string `json:"answer"`
}

func (h *ChatbotHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The browser resends the email it got at login as its identity claim.
	// A bearer-token email, when one was presented, takes precedence.
	email := req.Email
	if claim, ok := middleware.SessionEmail(r.Context()); ok {
		email = claim
	}

	answer, err := h.chat.Ask(r.Context(), service.AskInput{
		Email:    email,
		Question: req.Question,
	})
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, ChatbotResponse{Answer: answer})
	case errors.Is(err, domain.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing fields")
	case errors.Is(err, domain.ErrCompletionFailed):
		slog.Error("completion failed", "error", err)
		respondError(w, http.StatusInternalServerError, "AI service error")
	default:
		slog.Error("chatbot request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
