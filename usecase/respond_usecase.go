package usecase

import (
	"context"
	"errors"
	"time"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/logger"
)

var ErrReviewNotFound = errors.New("review not found")

type IRespondUsecase interface {
	Respond(ctx context.Context, req *dto.RespondRequest) (*dto.RespondResult, error)
}

type respondUsecase struct {
	reviewRepo   repository.IReview
	locationRepo repository.ILocation
	connRepo     repository.IPlatformConnection
	responseRepo repository.IResponse
	profile      repository.IBusinessProfile
	ai           IAIUsecase
	modelName    string
}

func NewRespondUsecase(
	reviewRepo repository.IReview,
	locationRepo repository.ILocation,
	connRepo repository.IPlatformConnection,
	responseRepo repository.IResponse,
	profile repository.IBusinessProfile,
	ai IAIUsecase,
	modelName string,
) IRespondUsecase {
	return &respondUsecase{
		reviewRepo:   reviewRepo,
		locationRepo: locationRepo,
		connRepo:     connRepo,
		responseRepo: responseRepo,
		profile:      profile,
		ai:           ai,
		modelName:    modelName,
	}
}

// Respond posts a reply to the platform. The reply text is generated first
// when AutoGenerate is set or no text was provided; otherwise the provided
// text is used. When no active connection exists the response is kept as a
// draft instead of failing.
func (u *respondUsecase) Respond(ctx context.Context, req *dto.RespondRequest) (*dto.RespondResult, error) {
	lg := logger.GetLogger()

	review, err := u.reviewRepo.GetByID(ctx, req.ReviewID)
	if err != nil {
		return nil, ErrReviewNotFound
	}

	location, err := u.locationRepo.GetByID(ctx, review.LocationID)
	if err != nil {
		return nil, err
	}

	// Missing response text implies generation, matching an explicit
	// autoGenerate flag.
	text := req.Response
	isGenerated := false
	tokensUsed := 0
	if req.AutoGenerate || text == "" {
		generated, err := u.ai.Generate(ctx, &dto.GenerateRequest{
			ReviewText:     review.ReviewText,
			Rating:         review.Rating,
			ReviewerName:   review.ReviewerName,
			Platform:       review.Platform,
			BusinessName:   location.Name,
			OrganizationID: location.OrganizationID,
			BrandVoiceID:   req.BrandVoiceID,
		})
		if err != nil {
			return nil, err
		}
		text = generated.Response
		tokensUsed = generated.TokensUsed
		isGenerated = true
	}
	if text == "" {
		return &dto.RespondResult{Success: false, Error: "Response text is required"}, nil
	}

	record := &model.Response{
		ReviewID:      review.ID,
		ResponseText:  text,
		IsAIGenerated: isGenerated,
		TokensUsed:    tokensUsed,
		Status:        "pending",
	}
	if isGenerated {
		modelUsed := u.modelName
		record.AIModelUsed = &modelUsed
	}

	conn, err := u.connRepo.GetActive(ctx, review.Platform)
	if err != nil || review.Metadata.ResourceName == "" {
		record.Status = "pending"
		if _, err := u.responseRepo.Insert(ctx, record); err != nil {
			lg.WithField("error", err).Warn("Failed to save draft response")
		}
		_ = u.reviewRepo.UpdateStatus(ctx, review.ID, "draft")
		return &dto.RespondResult{
			Success:  true,
			Response: record,
			Posted:   false,
			Message:  "Response saved as draft - no active platform connection",
		}, nil
	}

	accessToken := conn.AccessToken
	if conn.TokenExpired(time.Now()) {
		if conn.RefreshToken == nil || *conn.RefreshToken == "" {
			return &dto.RespondResult{Success: false, Error: "Access token expired and no refresh token available"}, nil
		}
		tokens := u.profile.RefreshAccessToken(ctx, *conn.RefreshToken)
		if tokens == nil {
			return &dto.RespondResult{Success: false, Error: "Failed to refresh access token"}, nil
		}
		accessToken = tokens.AccessToken
		expiry := tokens.TokenExpiresAt
		if err := u.connRepo.UpdateTokens(ctx, conn.ID, &model.PlatformConnection{
			AccessToken:    tokens.AccessToken,
			TokenExpiresAt: &expiry,
		}); err != nil {
			lg.WithField("error", err).Warn("Failed to persist refreshed token")
		}
	}

	result := u.profile.ReplyToReview(ctx, accessToken, review.Metadata.ResourceName, text)
	if !result.Success {
		record.Status = "failed"
		record.ErrorMessage = &result.Error
		if _, err := u.responseRepo.Insert(ctx, record); err != nil {
			lg.WithField("error", err).Warn("Failed to record failed response")
		}
		_ = u.reviewRepo.UpdateStatus(ctx, review.ID, "failed")
		return &dto.RespondResult{Success: false, Error: result.Error}, nil
	}

	now := time.Now().UTC()
	record.Status = "posted"
	record.PostedAt = &now
	if _, err := u.responseRepo.Insert(ctx, record); err != nil {
		lg.WithField("error", err).Warn("Failed to record posted response")
	}
	if err := u.reviewRepo.MarkResponded(ctx, review.ID); err != nil {
		lg.WithField("error", err).Warn("Failed to mark review as responded")
	}

	return &dto.RespondResult{Success: true, Response: record, Posted: true}, nil
}
