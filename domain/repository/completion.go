package repository

import (
	"context"

	"granitereply/domain/model"
)

// CompletionRequest is one chat-completion call. JSONObject constrains the
// model to structured JSON output.
type CompletionRequest struct {
	Model       string
	Messages    []model.ChatMessage
	Temperature float64
	MaxTokens   int
	JSONObject  bool
}

// CompletionResult carries the raw text and token usage of a completion.
// TokensUsed is 0 when the API omits usage data.
type CompletionResult struct {
	Text       string
	TokensUsed int
}

// ICompletion abstracts the hosted chat-completion API. The client is
// constructed once at startup and injected; errors propagate to the caller
// unchanged (no retries, no backoff).
type ICompletion interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}
