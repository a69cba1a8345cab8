package usecase

import (
	"context"
	"strings"
	"time"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/logger"
)

type IChatUsecase interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatUsecase struct {
	completion repository.ICompletion
	chatLog    repository.IChatLog
	modelName  string
}

func NewChatUsecase(completion repository.ICompletion, chatLog repository.IChatLog, modelName string) IChatUsecase {
	return &chatUsecase{completion: completion, chatLog: chatLog, modelName: modelName}
}

// Chat answers one widget exchange. Only the trailing messages are forwarded
// for context; the transcript is stored best effort.
func (u *chatUsecase) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	history := req.Messages
	if len(history) > chatContextLimit {
		history = history[len(history)-chatContextLimit:]
	}

	messages := make([]model.ChatMessage, 0, len(history)+1)
	messages = append(messages, model.ChatMessage{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, history...)

	result, err := u.completion.Complete(ctx, repository.CompletionRequest{
		Model:       u.modelName,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}

	reply := strings.TrimSpace(result.Text)
	if reply == "" {
		reply = chatFallbackResponse
	}

	if err := u.chatLog.SaveTranscript(ctx, &model.ChatTranscript{
		SessionID: req.SessionID,
		Messages:  req.Messages,
		Reply:     reply,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to save chat transcript")
	}

	return &dto.ChatResponse{Response: reply}, nil
}
