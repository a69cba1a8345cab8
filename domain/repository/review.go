package repository

import (
	"context"

	"granitereply/domain/model"
)

// IReview is the persistence contract for synced reviews. Upsert is keyed on
// (platform, platform_review_id) so re-running a sync is idempotent.
type IReview interface {
	Upsert(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	MarkResponded(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// IPlatformConnection manages stored OAuth credential sets.
type IPlatformConnection interface {
	ListActive(ctx context.Context, platform string) ([]*model.PlatformConnection, error)
	GetActive(ctx context.Context, platform string) (*model.PlatformConnection, error)
	Upsert(ctx context.Context, conn *model.PlatformConnection) error
	UpdateTokens(ctx context.Context, id int64, tokens *model.PlatformConnection) error
}

// ILocation upserts locations discovered during sync, keyed on the
// platform-specific place identifier.
type ILocation interface {
	UpsertByPlaceID(ctx context.Context, loc *model.Location) (*model.Location, error)
	GetByID(ctx context.Context, id int64) (*model.Location, error)
}

// IResponse records reply attempts.
type IResponse interface {
	Insert(ctx context.Context, resp *model.Response) (*model.Response, error)
}

// IBrandVoice reads per-organization voice settings. Implementations return
// sql.ErrNoRows (or an equivalent not-found error) when no record exists;
// callers fall back to model.DefaultBrandVoice.
type IBrandVoice interface {
	GetByOrganization(ctx context.Context, organizationID string) (*model.BrandVoiceSettings, error)
	GetByID(ctx context.Context, id int64) (*model.BrandVoiceSettings, error)
}
