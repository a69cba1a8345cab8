package usecase

import (
	"context"
	"fmt"
	"strings"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
)

type IDemoUsecase interface {
	GenerateDemo(ctx context.Context, req *dto.DemoRequest) (*dto.DemoResponse, error)
}

type demoUsecase struct {
	completion repository.ICompletion
	modelName  string
}

func NewDemoUsecase(completion repository.ICompletion, modelName string) IDemoUsecase {
	return &demoUsecase{completion: completion, modelName: modelName}
}

// BuildDemoSystemPrompt assembles the unauthenticated demo prompt. A missing
// rating is treated as 4 so the demo leans positive.
func BuildDemoSystemPrompt(businessDescription string, rating int) string {
	effectiveRating := rating
	if effectiveRating == 0 {
		effectiveRating = 4
	}
	isNegative := effectiveRating <= 2
	isNeutral := effectiveRating == 3

	var b strings.Builder
	b.WriteString("You are a review response specialist. A business owner wants to see how AI can help them respond to customer reviews.\n\n")
	fmt.Fprintf(&b, "Business Description: %s\n\n", businessDescription)
	b.WriteString("Write a professional, personalized response to their customer review. Guidelines:\n")
	b.WriteString("- Be warm, authentic, and specific to what the customer mentioned\n")
	b.WriteString("- Reference specific details from the review\n")
	b.WriteString("- Never use generic phrases like \"We appreciate your feedback\"\n")
	b.WriteString("- Sound human, not robotic\n")
	b.WriteString("- Keep the response 3-5 sentences\n")
	if isNegative {
		b.WriteString("- This appears to be a negative review - include a sincere apology and offer to make things right\n")
	}
	if isNeutral {
		b.WriteString("- This is a mixed review - acknowledge both positives and address any concerns\n")
	}
	b.WriteString("- End with a genuine invitation to return\n\n")
	b.WriteString("IMPORTANT: Detect the language of the review and respond in THE SAME LANGUAGE.")
	return b.String()
}

// BuildDemoUserPrompt assembles the demo user prompt; reviewer and rating
// lines only appear when provided.
func BuildDemoUserPrompt(review, reviewerName string, rating int) string {
	var b strings.Builder
	b.WriteString("Write a response to this customer review:\n\n")
	if reviewerName != "" {
		fmt.Fprintf(&b, "Reviewer: %s\n", reviewerName)
	}
	if rating > 0 {
		fmt.Fprintf(&b, "Rating: %d/5 stars\n", rating)
	}
	fmt.Fprintf(&b, "Review: %q", review)
	return b.String()
}

func (u *demoUsecase) GenerateDemo(ctx context.Context, req *dto.DemoRequest) (*dto.DemoResponse, error) {
	result, err := u.completion.Complete(ctx, repository.CompletionRequest{
		Model: u.modelName,
		Messages: []model.ChatMessage{
			{Role: "system", Content: BuildDemoSystemPrompt(req.BusinessDescription, req.Rating)},
			{Role: "user", Content: BuildDemoUserPrompt(req.Review, req.ReviewerName, req.Rating)},
		},
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		return nil, err
	}
	return &dto.DemoResponse{Response: strings.TrimSpace(result.Text)}, nil
}
