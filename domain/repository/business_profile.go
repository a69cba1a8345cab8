package repository

import (
	"context"

	"granitereply/domain/dto"
)

// IBusinessProfile is the review-platform management API surface used by the
// sync orchestrator and the respond flow. Listing calls return empty results
// on upstream failure (logged, never raised); reply mutations report through
// a result struct.
type IBusinessProfile interface {
	// AuthCodeURL builds the consent URL starting the connect flow.
	AuthCodeURL(state string) string
	// ExchangeCode trades an authorization code for tokens. Any non-2xx
	// response is a terminal error for the request.
	ExchangeCode(ctx context.Context, code string) (*dto.GoogleTokens, error)
	// RefreshAccessToken returns nil on any failure; the caller must treat
	// nil as "token remains stale".
	RefreshAccessToken(ctx context.Context, refreshToken string) *dto.GoogleTokens

	GetAccounts(ctx context.Context, accessToken string) []dto.GoogleAccount
	GetLocations(ctx context.Context, accessToken, accountID string) []dto.GoogleLocation
	GetReviews(ctx context.Context, accessToken, accountID, locationID string, pageSize int, pageToken string) dto.GoogleReviewPage

	ReplyToReview(ctx context.Context, accessToken, reviewResourceName, text string) dto.ReplyResult
	DeleteReply(ctx context.Context, accessToken, reviewResourceName string) dto.ReplyResult
}
