// Package completion adapts the external text-completion provider. The rest
// of the system treats it as an opaque prompt-in, answer-out dependency:
// one request per call, no retries, no streaming.
package completion

import "context"

// Result is a single completed answer plus provider bookkeeping.
type Result struct {
	Answer           string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Gateway produces a completion for a prompt. Provider failures of any kind
// (network, quota, malformed response) are wrapped in
// domain.ErrCompletionFailed so callers can tell them apart from their own
// errors.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (*Result, error)
}
