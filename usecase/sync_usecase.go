package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"granitereply/domain/dto"
	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/clients/google"
	"granitereply/infrastructure/logger"
	"granitereply/infrastructure/pubsub"
)

const platformGoogle = "google"

type ISyncUsecase interface {
	SyncAll(ctx context.Context) *dto.SyncResponse
}

type syncUsecase struct {
	connRepo     repository.IPlatformConnection
	locationRepo repository.ILocation
	reviewRepo   repository.IReview
	profile      repository.IBusinessProfile
	events       pubsub.ISyncEvents // optional
	eventTopic   string
	pageSize     int
}

func NewSyncUsecase(
	connRepo repository.IPlatformConnection,
	locationRepo repository.ILocation,
	reviewRepo repository.IReview,
	profile repository.IBusinessProfile,
	events pubsub.ISyncEvents,
	eventTopic string,
	pageSize int,
) ISyncUsecase {
	if pageSize <= 0 {
		pageSize = 50
	}
	if eventTopic == "" {
		eventTopic = "reviews-synced"
	}
	return &syncUsecase{
		connRepo:     connRepo,
		locationRepo: locationRepo,
		reviewRepo:   reviewRepo,
		profile:      profile,
		events:       events,
		eventTopic:   eventTopic,
		pageSize:     pageSize,
	}
}

// resourceID extracts the trailing id from a resource name such as
// accounts/123 or locations/456.
func resourceID(name string) string {
	idx := strings.LastIndex(name, "/")
	if idx == -1 {
		return name
	}
	return name[idx+1:]
}

// SyncAll walks every active connection sequentially: refresh the token if
// stale, list accounts and locations, then page through reviews upserting
// each one. A failing connection is reported in its result entry and never
// aborts the run.
func (u *syncUsecase) SyncAll(ctx context.Context) *dto.SyncResponse {
	lg := logger.GetLogger()
	out := &dto.SyncResponse{Success: true, Results: []dto.SyncResultEntry{}, Timestamp: time.Now().UTC()}

	connections, err := u.connRepo.ListActive(ctx, platformGoogle)
	if err != nil {
		lg.WithField("error", err).Error("Failed to list active connections")
		out.Success = false
		return out
	}

	for _, conn := range connections {
		accessToken := conn.AccessToken

		if conn.TokenExpired(time.Now()) {
			if conn.RefreshToken == nil || *conn.RefreshToken == "" {
				out.Results = append(out.Results, dto.SyncResultEntry{
					ConnectionID: conn.ID,
					Error:        "Access token expired and no refresh token available",
				})
				continue
			}
			tokens := u.profile.RefreshAccessToken(ctx, *conn.RefreshToken)
			if tokens == nil {
				lg.WithField("connection_id", conn.ID).Warn("Token refresh failed - skipping connection")
				out.Results = append(out.Results, dto.SyncResultEntry{
					ConnectionID: conn.ID,
					Error:        "Failed to refresh access token",
				})
				continue
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

		// An empty account listing (no accounts, or a fetch failure already
		// logged by the client) simply yields no result rows.
		accounts := u.profile.GetAccounts(ctx, accessToken)

		for _, account := range accounts {
			accountID := resourceID(account.Name)
			locations := u.profile.GetLocations(ctx, accessToken, accountID)

			for _, gloc := range locations {
				entry := u.syncLocation(ctx, conn, accessToken, accountID, account.AccountName, gloc)
				out.Results = append(out.Results, entry)
			}
		}
	}

	u.publishSyncEvent(ctx, out)
	return out
}

// syncLocation upserts one location and all of its reviews, returning the
// per-location result entry.
func (u *syncUsecase) syncLocation(ctx context.Context, conn *model.PlatformConnection, accessToken, accountID, accountName string, gloc dto.GoogleLocation) dto.SyncResultEntry {
	lg := logger.GetLogger()
	locationID := resourceID(gloc.Name)
	entry := dto.SyncResultEntry{
		ConnectionID: conn.ID,
		Account:      accountName,
		Location:     gloc.Title,
	}

	loc := &model.Location{
		OrganizationID: conn.OrganizationID,
		Name:           gloc.Title,
		GooglePlaceID:  locationID,
	}
	if addr := gloc.StorefrontAddress; addr != nil {
		loc.Address = strings.Join(addr.AddressLines, ", ")
		loc.City = addr.Locality
		loc.State = addr.AdministrativeArea
		loc.ZipCode = addr.PostalCode
	}
	stored, err := u.locationRepo.UpsertByPlaceID(ctx, loc)
	if err != nil {
		lg.WithField("error", err).Error("Failed to upsert location")
		entry.Error = "Failed to store location"
		return entry
	}

	pageToken := ""
	for {
		page := u.profile.GetReviews(ctx, accessToken, accountID, locationID, u.pageSize, pageToken)
		for i := range page.Reviews {
			if err := u.upsertReview(ctx, stored.ID, &page.Reviews[i]); err != nil {
				lg.WithField("error", err).Warn("Failed to upsert review")
				entry.Errors++
				continue
			}
			entry.Synced++
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return entry
}

func (u *syncUsecase) upsertReview(ctx context.Context, locationID int64, gr *dto.GoogleReview) error {
	reviewDate := time.Now().UTC()
	if t, err := time.Parse(time.RFC3339, gr.CreateTime); err == nil {
		reviewDate = t
	}

	review := &model.Review{
		LocationID:       locationID,
		Platform:         platformGoogle,
		PlatformReviewID: gr.ReviewID,
		ReviewerName:     gr.Reviewer.DisplayName,
		Rating:           google.StarRatingToNumber(gr.StarRating),
		ReviewText:       gr.Comment,
		ReviewDate:       reviewDate,
		HasResponse:      gr.ReviewReply != nil,
		Status:           "pending",
		Metadata: model.ReviewMetadata{
			ResourceName: gr.Name,
			UpdateTime:   gr.UpdateTime,
		},
	}
	if gr.Reviewer.ProfilePhotoURL != "" {
		avatar := gr.Reviewer.ProfilePhotoURL
		review.ReviewerAvatar = &avatar
	}
	if gr.ReviewReply != nil {
		review.Metadata.ExistingReply = gr.ReviewReply.Comment
	}
	return u.reviewRepo.Upsert(ctx, review)
}

// publishSyncEvent emits a summary event for downstream consumers. Best
// effort; a missing or failing broker only logs.
func (u *syncUsecase) publishSyncEvent(ctx context.Context, resp *dto.SyncResponse) {
	if u.events == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if _, err := u.events.Publish(ctx, u.eventTopic, payload); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to publish sync event")
	}
}
