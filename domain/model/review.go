package model

import "time"

// Review is a customer review synced from an external platform. The pair
// (Platform, PlatformReviewID) is unique and acts as the sync idempotency key.
type Review struct {
	ID               int64          `json:"id"`
	LocationID       int64          `json:"location_id"`
	Platform         string         `json:"platform"`
	PlatformReviewID string         `json:"platform_review_id"`
	ReviewerName     string         `json:"reviewer_name"`
	ReviewerAvatar   *string        `json:"reviewer_avatar_url,omitempty"`
	Rating           int            `json:"rating"` // 1-5
	ReviewText       string         `json:"review_text"`
	ReviewDate       time.Time      `json:"review_date"`
	HasResponse      bool           `json:"has_response"`
	Status           string         `json:"status"` // pending | draft | posted | failed
	Metadata         ReviewMetadata `json:"metadata"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ReviewMetadata carries platform-specific identifiers needed to address the
// review later (e.g. posting a reply to the Google resource name).
type ReviewMetadata struct {
	ResourceName  string `json:"resourceName,omitempty"`
	UpdateTime    string `json:"updateTime,omitempty"`
	ExistingReply string `json:"existingReply,omitempty"`
}

// Location is a physical business location owned by an organization.
type Location struct {
	ID             int64     `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZipCode        string    `json:"zip_code"`
	GooglePlaceID  string    `json:"google_place_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Response is one generated or manual reply attempt for a review.
type Response struct {
	ID            int64      `json:"id"`
	ReviewID      int64      `json:"review_id"`
	ResponseText  string     `json:"response_text"`
	IsAIGenerated bool       `json:"is_ai_generated"`
	AIModelUsed   *string    `json:"ai_model_used,omitempty"`
	TokensUsed    int        `json:"tokens_used"`
	Status        string     `json:"status"` // pending | posted | failed
	PostedAt      *time.Time `json:"posted_at,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PlatformConnection stores OAuth credentials linking an organization to a
// review platform account.
type PlatformConnection struct {
	ID             int64      `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Platform       string     `json:"platform"`
	AccessToken    string     `json:"access_token"`
	RefreshToken   *string    `json:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TokenExpired reports whether the stored access token is past its expiry.
// A connection without an expiry is treated as still valid.
func (c *PlatformConnection) TokenExpired(now time.Time) bool {
	return c.TokenExpiresAt != nil && c.TokenExpiresAt.Before(now)
}
