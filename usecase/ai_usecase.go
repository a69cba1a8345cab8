package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/cache"
	"granitereply/infrastructure/logger"
)

const (
	generateTemperature  = 0.7
	generateMaxTokens    = 500
	sentimentTemperature = 0.3
	sentimentMaxTokens   = 150
)

type IAIUsecase interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResult, error)
	AnalyzeSentiment(ctx context.Context, reviewText string) (*dto.SentimentAnalysis, error)
	Improve(ctx context.Context, req *dto.ImproveRequest) (*dto.GenerateResult, error)
}

type aiUsecase struct {
	completion   repository.ICompletion
	brandVoice   repository.IBrandVoice
	responseRepo repository.IResponse
	reviewRepo   repository.IReview
	voiceCache   *cache.BrandVoiceCache
	modelName    string
}

func NewAIUsecase(
	completion repository.ICompletion,
	brandVoice repository.IBrandVoice,
	responseRepo repository.IResponse,
	reviewRepo repository.IReview,
	voiceCache *cache.BrandVoiceCache,
	modelName string,
) IAIUsecase {
	return &aiUsecase{
		completion:   completion,
		brandVoice:   brandVoice,
		responseRepo: responseRepo,
		reviewRepo:   reviewRepo,
		voiceCache:   voiceCache,
		modelName:    modelName,
	}
}

// toneDescription maps a voice tone to its prompt wording. Unknown tones fall
// back to professional.
func toneDescription(tone string) string {
	switch tone {
	case model.ToneFriendly:
		return "warm, friendly, and personable"
	case model.ToneCasual:
		return "relaxed, casual, and conversational"
	case model.ToneFormal:
		return "formal, respectful, and traditional"
	default:
		return "professional, polished, and business-appropriate"
	}
}

// lengthInstruction maps a response length to its prompt wording. Unknown
// lengths fall back to medium.
func lengthInstruction(length string) string {
	switch length {
	case model.LengthShort:
		return "Keep the response brief, 2-3 sentences maximum."
	case model.LengthDetailed:
		return "Provide a thorough response, 5-7 sentences with specific details."
	default:
		return "Write a moderate response, 3-5 sentences."
	}
}

// BuildSystemPrompt assembles the generation system prompt from the business
// name, the voice settings and the review rating. Conditional guidelines only
// appear when the voice enables them and the rating warrants them.
func BuildSystemPrompt(businessName string, voice *model.BrandVoiceSettings, rating int) string {
	isNegative := rating <= 2

	var b strings.Builder
	fmt.Fprintf(&b, "You are a review response specialist for %s. Write responses that are %s.\n\n", businessName, toneDescription(voice.Tone))
	b.WriteString(lengthInstruction(voice.ResponseLength))
	b.WriteString("\n")

	if voice.PersonalityDescription != nil && *voice.PersonalityDescription != "" {
		fmt.Fprintf(&b, "\nBrand personality: %s\n", *voice.PersonalityDescription)
	}
	if voice.CustomInstructions != nil && *voice.CustomInstructions != "" {
		fmt.Fprintf(&b, "\nAdditional instructions: %s\n", *voice.CustomInstructions)
	}

	b.WriteString("\nGuidelines:\n")
	b.WriteString("- Never use generic phrases like \"We appreciate your feedback\"\n")
	b.WriteString("- Be specific and reference details from the review when possible\n")
	b.WriteString("- Sound human and authentic, not robotic\n")
	if isNegative && voice.AlwaysApologizeNegative {
		b.WriteString("- Include a sincere apology for their negative experience\n")
	}
	if isNegative && voice.OfferResolutionNegative {
		b.WriteString("- Offer to resolve the issue and provide contact information\n")
	}
	if voice.IncludeCallToAction {
		cta := "We hope to see you again soon!"
		if voice.CallToActionText != nil && *voice.CallToActionText != "" {
			cta = *voice.CallToActionText
		}
		fmt.Fprintf(&b, "- End with: %s\n", cta)
	}
	if voice.IncludeOwnerSignature && voice.OwnerName != nil && *voice.OwnerName != "" {
		signoff := *voice.OwnerName
		if voice.OwnerTitle != nil && *voice.OwnerTitle != "" {
			signoff = fmt.Sprintf("%s, %s", signoff, *voice.OwnerTitle)
		}
		fmt.Fprintf(&b, "- Sign off as: %s\n", signoff)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildUserPrompt assembles the generation user prompt. A rating of 2 or
// lower adds a negative-review note; exactly 3 adds a mixed-review note.
func BuildUserPrompt(platform, reviewerName, reviewText string, rating int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a response to this %s review:\n\n", platform)
	fmt.Fprintf(&b, "Rating: %d/5 stars\n", rating)
	if reviewerName != "" {
		fmt.Fprintf(&b, "Reviewer: %s\n", reviewerName)
	}
	fmt.Fprintf(&b, "Review: %q\n", reviewText)

	if rating <= 2 {
		b.WriteString("\nThis is a negative review - handle with care and empathy.")
	} else if rating == 3 {
		b.WriteString("\nThis is a mixed review - acknowledge both positives and areas for improvement.")
	}
	return b.String()
}

// getBrandVoice resolves voice settings by id when given, otherwise by
// organization, consulting the cache first. Any lookup failure falls back to
// the default voice so a voice problem never blocks generation.
func (u *aiUsecase) getBrandVoice(ctx context.Context, organizationID string, brandVoiceID int64) *model.BrandVoiceSettings {
	if brandVoiceID > 0 {
		voice, err := u.brandVoice.GetByID(ctx, brandVoiceID)
		if err == nil {
			return voice
		}
		if !errors.Is(err, sql.ErrNoRows) {
			logger.GetLogger().WithField("error", err).Warn("Brand voice lookup by id failed - using default")
		}
		return model.DefaultBrandVoice(organizationID)
	}

	if cached := u.voiceCache.Get(ctx, organizationID); cached != nil {
		return cached
	}
	voice, err := u.brandVoice.GetByOrganization(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.GetLogger().WithField("error", err).Warn("Brand voice lookup failed - using default")
		}
		return model.DefaultBrandVoice(organizationID)
	}
	u.voiceCache.Set(ctx, voice)
	return voice
}

// Generate produces a draft response for a review. When the request carries a
// review id the draft is also persisted; persistence failure is logged and
// does not fail the call.
func (u *aiUsecase) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResult, error) {
	voice := u.getBrandVoice(ctx, req.OrganizationID, req.BrandVoiceID)

	result, err := u.completion.Complete(ctx, repository.CompletionRequest{
		Model: u.modelName,
		Messages: []model.ChatMessage{
			{Role: "system", Content: BuildSystemPrompt(req.BusinessName, voice, req.Rating)},
			{Role: "user", Content: BuildUserPrompt(req.Platform, req.ReviewerName, req.ReviewText, req.Rating)},
		},
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.Text)
	if req.ReviewID > 0 {
		modelUsed := u.modelName
		record := &model.Response{
			ReviewID:      req.ReviewID,
			ResponseText:  text,
			IsAIGenerated: true,
			AIModelUsed:   &modelUsed,
			TokensUsed:    result.TokensUsed,
			Status:        "pending",
		}
		if _, err := u.responseRepo.Insert(ctx, record); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to persist generated response")
		} else if err := u.reviewRepo.UpdateStatus(ctx, req.ReviewID, "draft"); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to mark review as draft")
		}
	}

	return &dto.GenerateResult{Response: text, TokensUsed: result.TokensUsed}, nil
}

// AnalyzeSentiment scores a review text in [-1, 1] with a label and key
// topics, using JSON-constrained output.
func (u *aiUsecase) AnalyzeSentiment(ctx context.Context, reviewText string) (*dto.SentimentAnalysis, error) {
	systemPrompt := `Analyze the sentiment of customer reviews. Return JSON only:
{
  "score": <number from -1 (very negative) to 1 (very positive)>,
  "label": "<positive|neutral|negative>",
  "keyTopics": ["<topic1>", "<topic2>", "<topic3>"]
}
Extract 2-4 key topics mentioned (e.g., "food quality", "wait time", "staff friendliness").`

	result, err := u.completion.Complete(ctx, repository.CompletionRequest{
		Model: u.modelName,
		Messages: []model.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Analyze this review: %q", reviewText)},
		},
		Temperature: sentimentTemperature,
		MaxTokens:   sentimentMaxTokens,
		JSONObject:  true,
	})
	if err != nil {
		return nil, err
	}

	analysis := &dto.SentimentAnalysis{Label: "neutral", KeyTopics: []string{}}
	if err := json.Unmarshal([]byte(result.Text), analysis); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Sentiment response was not valid JSON")
		return &dto.SentimentAnalysis{Label: "neutral", KeyTopics: []string{}}, nil
	}
	if analysis.Label == "" {
		analysis.Label = "neutral"
	}
	if analysis.KeyTopics == nil {
		analysis.KeyTopics = []string{}
	}
	return analysis, nil
}

// Improve rewrites an existing response according to editor feedback while
// keeping the organization's voice.
func (u *aiUsecase) Improve(ctx context.Context, req *dto.ImproveRequest) (*dto.GenerateResult, error) {
	voice := u.getBrandVoice(ctx, req.OrganizationID, 0)

	systemPrompt := fmt.Sprintf(
		"You are a review response editor. Improve the response based on the feedback while maintaining the brand voice: %s, %s length.",
		voice.Tone, voice.ResponseLength)
	userPrompt := fmt.Sprintf("Original response: %q\n\nFeedback: %s\n\nPlease provide an improved version.",
		req.OriginalResponse, req.Feedback)

	result, err := u.completion.Complete(ctx, repository.CompletionRequest{
		Model: u.modelName,
		Messages: []model.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		text = req.OriginalResponse
	}
	return &dto.GenerateResult{Response: text, TokensUsed: result.TokensUsed}, nil
}
