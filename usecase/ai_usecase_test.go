package usecase_test

import (
	"context"
	"database/sql"
	"testing"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/cache"
	"granitereply/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations
type MockCompletion struct {
	mock.Mock
}

func (m *MockCompletion) Complete(ctx context.Context, req repository.CompletionRequest) (repository.CompletionResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(repository.CompletionResult), args.Error(1)
}

type MockBrandVoice struct {
	mock.Mock
}

func (m *MockBrandVoice) GetByOrganization(ctx context.Context, organizationID string) (*model.BrandVoiceSettings, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrandVoiceSettings), args.Error(1)
}

func (m *MockBrandVoice) GetByID(ctx context.Context, id int64) (*model.BrandVoiceSettings, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrandVoiceSettings), args.Error(1)
}

type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Insert(ctx context.Context, resp *model.Response) (*model.Response, error) {
	args := m.Called(ctx, resp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Response), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Upsert(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepo) MarkResponded(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func friendlyVoice(cta string) *model.BrandVoiceSettings {
	return &model.BrandVoiceSettings{
		OrganizationID:          "org-1",
		Tone:                    model.ToneFriendly,
		ResponseLength:          model.LengthMedium,
		AlwaysApologizeNegative: true,
		OfferResolutionNegative: true,
		IncludeCallToAction:     true,
		CallToActionText:        &cta,
	}
}

func TestBuildSystemPrompt_ToneIsExclusive(t *testing.T) {
	voice := friendlyVoice("See you soon!")
	prompt := usecase.BuildSystemPrompt("Bella Italia", voice, 5)

	assert.Contains(t, prompt, "warm, friendly, and personable")
	assert.NotContains(t, prompt, "professional, polished, and business-appropriate")
	assert.NotContains(t, prompt, "relaxed, casual, and conversational")
	assert.NotContains(t, prompt, "formal, respectful, and traditional")
	assert.Contains(t, prompt, "3-5 sentences")
	assert.Contains(t, prompt, "End with: See you soon!")
}

func TestBuildSystemPrompt_NegativeGuidelines(t *testing.T) {
	voice := friendlyVoice("See you soon!")

	negative := usecase.BuildSystemPrompt("Bella Italia", voice, 2)
	assert.Contains(t, negative, "Include a sincere apology for their negative experience")
	assert.Contains(t, negative, "Offer to resolve the issue and provide contact information")

	positive := usecase.BuildSystemPrompt("Bella Italia", voice, 5)
	assert.NotContains(t, positive, "sincere apology")
	assert.NotContains(t, positive, "Offer to resolve the issue")
}

func TestBuildSystemPrompt_SignatureAndPersonality(t *testing.T) {
	name := "Maria"
	title := "Owner"
	personality := "Family-run trattoria, warm and proud of tradition"
	voice := friendlyVoice("See you soon!")
	voice.IncludeOwnerSignature = true
	voice.OwnerName = &name
	voice.OwnerTitle = &title
	voice.PersonalityDescription = &personality

	prompt := usecase.BuildSystemPrompt("Bella Italia", voice, 4)
	assert.Contains(t, prompt, "Sign off as: Maria, Owner")
	assert.Contains(t, prompt, "Brand personality: Family-run trattoria")
}

func TestBuildUserPrompt_RatingNotes(t *testing.T) {
	negative := usecase.BuildUserPrompt("google", "Sam", "Cold food", 1)
	assert.Contains(t, negative, "This is a negative review - handle with care and empathy.")
	assert.NotContains(t, negative, "mixed review")

	mixed := usecase.BuildUserPrompt("google", "Sam", "Okay overall", 3)
	assert.Contains(t, mixed, "This is a mixed review - acknowledge both positives and areas for improvement.")
	assert.NotContains(t, mixed, "negative review")

	positive := usecase.BuildUserPrompt("google", "", "Loved it", 5)
	assert.NotContains(t, positive, "negative review")
	assert.NotContains(t, positive, "mixed review")
	assert.NotContains(t, positive, "Reviewer:")
	assert.Contains(t, positive, "Rating: 5/5 stars")
}

func newAIUsecase(completion *MockCompletion, brandVoice *MockBrandVoice, responseRepo *MockResponseRepo, reviewRepo *MockReviewRepo) usecase.IAIUsecase {
	return usecase.NewAIUsecase(completion, brandVoice, responseRepo, reviewRepo, cache.NewBrandVoiceCache(nil), "gpt-4-turbo-preview")
}

func TestAIUsecase_Generate_UsesStoredVoice(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	brandVoice.On("GetByOrganization", mock.Anything, "org-1").
		Return(friendlyVoice("See you soon!"), nil).
		Once()

	var captured repository.CompletionRequest
	completion.On("Complete", mock.Anything, mock.AnythingOfType("repository.CompletionRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.CompletionRequest)
		}).
		Return(repository.CompletionResult{Text: "  Grazie mille, Anna!  ", TokensUsed: 42}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	result, err := aiUsecase.Generate(context.Background(), &dto.GenerateRequest{
		ReviewText:     "Amazing pasta and lovely staff",
		Rating:         5,
		ReviewerName:   "Anna",
		Platform:       "google",
		BusinessName:   "Bella Italia",
		OrganizationID: "org-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Grazie mille, Anna!", result.Response)
	assert.Equal(t, 42, result.TokensUsed)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.Contains(t, captured.Messages[0].Content, "warm, friendly, and personable")
	assert.Contains(t, captured.Messages[0].Content, "End with: See you soon!")
	assert.Contains(t, captured.Messages[1].Content, "Rating: 5/5 stars")
	assert.NotContains(t, captured.Messages[1].Content, "negative review")

	completion.AssertExpectations(t)
	brandVoice.AssertExpectations(t)
	responseRepo.AssertExpectations(t)
}

func TestAIUsecase_Generate_UsesRequestedVoiceID(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	brandVoice.On("GetByID", mock.Anything, int64(3)).
		Return(&model.BrandVoiceSettings{
			ID:             3,
			OrganizationID: "org-1",
			Tone:           model.ToneFormal,
			ResponseLength: model.LengthShort,
		}, nil).
		Once()

	var captured repository.CompletionRequest
	completion.On("Complete", mock.Anything, mock.AnythingOfType("repository.CompletionRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.CompletionRequest)
		}).
		Return(repository.CompletionResult{Text: "Thank you.", TokensUsed: 5}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	_, err := aiUsecase.Generate(context.Background(), &dto.GenerateRequest{
		ReviewText:     "Fine",
		Rating:         4,
		Platform:       "google",
		BusinessName:   "Bella Italia",
		OrganizationID: "org-1",
		BrandVoiceID:   3,
	})

	require.NoError(t, err)
	assert.Contains(t, captured.Messages[0].Content, "formal, respectful, and traditional")
	assert.Contains(t, captured.Messages[0].Content, "2-3 sentences maximum")
	brandVoice.AssertNotCalled(t, "GetByOrganization", mock.Anything, mock.Anything)
	brandVoice.AssertExpectations(t)
}

func TestAIUsecase_Generate_FallsBackToDefaultVoice(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	brandVoice.On("GetByOrganization", mock.Anything, "org-2").
		Return(nil, sql.ErrNoRows).
		Once()

	var captured repository.CompletionRequest
	completion.On("Complete", mock.Anything, mock.AnythingOfType("repository.CompletionRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.CompletionRequest)
		}).
		Return(repository.CompletionResult{Text: "Thank you!", TokensUsed: 10}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	_, err := aiUsecase.Generate(context.Background(), &dto.GenerateRequest{
		ReviewText:     "Nice place",
		Rating:         4,
		Platform:       "google",
		BusinessName:   "Bella Italia",
		OrganizationID: "org-2",
	})

	require.NoError(t, err)
	assert.Contains(t, captured.Messages[0].Content, "professional, polished, and business-appropriate")
	assert.Contains(t, captured.Messages[0].Content, "End with: We hope to see you again soon!")

	brandVoice.AssertExpectations(t)
}

func TestAIUsecase_Generate_PersistsDraftForKnownReview(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	brandVoice.On("GetByOrganization", mock.Anything, "org-1").
		Return(friendlyVoice("See you soon!"), nil).
		Once()
	completion.On("Complete", mock.Anything, mock.Anything).
		Return(repository.CompletionResult{Text: "Thanks!", TokensUsed: 8}, nil).
		Once()
	responseRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *model.Response) bool {
		return r.ReviewID == 7 && r.IsAIGenerated && r.TokensUsed == 8
	})).Return(&model.Response{ID: 1}, nil).Once()
	reviewRepo.On("UpdateStatus", mock.Anything, int64(7), "draft").Return(nil).Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	_, err := aiUsecase.Generate(context.Background(), &dto.GenerateRequest{
		ReviewID:       7,
		ReviewText:     "Great",
		Rating:         5,
		Platform:       "google",
		BusinessName:   "Bella Italia",
		OrganizationID: "org-1",
	})

	require.NoError(t, err)
	responseRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
}

func TestAIUsecase_AnalyzeSentiment(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	var captured repository.CompletionRequest
	completion.On("Complete", mock.Anything, mock.AnythingOfType("repository.CompletionRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.CompletionRequest)
		}).
		Return(repository.CompletionResult{
			Text: `{"score": -0.8, "label": "negative", "keyTopics": ["wait time", "staff friendliness"]}`,
		}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	analysis, err := aiUsecase.AnalyzeSentiment(context.Background(), "Waited an hour, staff was rude")

	require.NoError(t, err)
	assert.True(t, captured.JSONObject)
	assert.Equal(t, 0.3, captured.Temperature)
	assert.Equal(t, 150, captured.MaxTokens)
	assert.Equal(t, -0.8, analysis.Score)
	assert.Equal(t, "negative", analysis.Label)
	assert.Equal(t, []string{"wait time", "staff friendliness"}, analysis.KeyTopics)
}

func TestAIUsecase_AnalyzeSentiment_InvalidJSON(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	completion.On("Complete", mock.Anything, mock.Anything).
		Return(repository.CompletionResult{Text: "not json"}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	analysis, err := aiUsecase.AnalyzeSentiment(context.Background(), "Some review")

	require.NoError(t, err)
	assert.Equal(t, 0.0, analysis.Score)
	assert.Equal(t, "neutral", analysis.Label)
	assert.Empty(t, analysis.KeyTopics)
}

func TestAIUsecase_Improve_KeepsOriginalWhenEmpty(t *testing.T) {
	completion := new(MockCompletion)
	brandVoice := new(MockBrandVoice)
	responseRepo := new(MockResponseRepo)
	reviewRepo := new(MockReviewRepo)

	brandVoice.On("GetByOrganization", mock.Anything, "org-1").
		Return(friendlyVoice("See you soon!"), nil).
		Once()
	completion.On("Complete", mock.Anything, mock.Anything).
		Return(repository.CompletionResult{Text: "   "}, nil).
		Once()

	aiUsecase := newAIUsecase(completion, brandVoice, responseRepo, reviewRepo)
	result, err := aiUsecase.Improve(context.Background(), &dto.ImproveRequest{
		OriginalResponse: "Thanks for visiting",
		Feedback:         "Make it warmer",
		OrganizationID:   "org-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Thanks for visiting", result.Response)
}
