package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhishek/learngrow/internal/completion"
	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatService struct {
	gateway  completion.Gateway
	chatRepo repository.ChatRecordRepository
}

func NewChatService(gateway completion.Gateway, chatRepo repository.ChatRecordRepository) *ChatService {
	return &ChatService{
		gateway:  gateway,
		chatRepo: chatRepo,
	}
}

type AskInput struct {
	Email    string
	Question string
}

// Ask answers a single question for the given user and records the exchange.
// A record is written only after the provider succeeds; a failed completion
// leaves no trace in the history.
func (s *ChatService) Ask(ctx context.Context, input AskInput) (string, error) {
	if input.Email == "" || input.Question == "" {
		return "", domain.ErrMissingFields
	}

	result, err := s.gateway.Complete(ctx, input.Question)
	if err != nil {
		return "", err
	}

	meta, err := json.Marshal(map[string]any{
		"model":             result.Model,
		"prompt_tokens":     result.PromptTokens,
		"completion_tokens": result.CompletionTokens,
	})
	if err != nil {
		return "", err
	}

	record := &domain.ChatRecord{
		ID:        uuid.New(),
		UserEmail: input.Email,
		Question:  input.Question,
		Answer:    result.Answer,
		Meta:      datatypes.JSON(meta),
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.Create(ctx, record); err != nil {
		return "", err
	}

	return result.Answer, nil
}
