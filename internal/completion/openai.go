package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/abhishek/learngrow/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// Config holds the OpenAI gateway settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the default OpenAI endpoint
	Timeout time.Duration
}

type OpenAIGateway struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGateway(cfg Config) *OpenAIGateway {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIGateway{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Complete sends the prompt as a single user message with no conversation
// history or system prompt; every question is answered statelessly.
func (g *OpenAIGateway) Complete(ctx context.Context, prompt string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices in response", domain.ErrCompletionFailed)
	}

	return &Result{
		Answer:           resp.Choices[0].Message.Content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
