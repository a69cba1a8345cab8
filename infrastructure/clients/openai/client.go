package openai

import (
	"context"
	"fmt"

	"granitereply/domain/repository"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Client wraps the hosted chat-completion API behind repository.ICompletion.
type Client struct {
	client openaisdk.Client
}

func NewClient(apiKey string) repository.ICompletion {
	return &Client{
		client: openaisdk.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Complete performs one chat completion. No retries; errors propagate to the
// caller unchanged.
func (c *Client) Complete(ctx context.Context, req repository.CompletionRequest) (repository.CompletionResult, error) {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openaisdk.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openaisdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(m.Content))
		}
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:    shared.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openaisdk.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(req.MaxTokens))
	}
	if req.JSONObject {
		params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return repository.CompletionResult{}, err
	}
	if len(completion.Choices) == 0 {
		return repository.CompletionResult{}, fmt.Errorf("completion returned no choices")
	}

	return repository.CompletionResult{
		Text:       completion.Choices[0].Message.Content,
		TokensUsed: int(completion.Usage.TotalTokens),
	}, nil
}
