package dto

import "time"

// GoogleTokens is the result of a code exchange or token refresh.
type GoogleTokens struct {
	AccessToken    string    `json:"access_token"`
	RefreshToken   string    `json:"refresh_token,omitempty"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

// GoogleAccount is one entry from the account management listing.
// Name is a resource name in the form accounts/{accountId}.
type GoogleAccount struct {
	Name        string `json:"name"`
	AccountName string `json:"accountName"`
	Type        string `json:"type,omitempty"`
	Role        string `json:"role,omitempty"`
}

// GoogleAddress is the storefront address subset requested via readMask.
type GoogleAddress struct {
	AddressLines       []string `json:"addressLines"`
	Locality           string   `json:"locality"`
	AdministrativeArea string   `json:"administrativeArea"`
	PostalCode         string   `json:"postalCode"`
}

// GoogleLocation is one entry from the business information listing.
// Name is a resource name in the form locations/{locationId}.
type GoogleLocation struct {
	Name              string         `json:"name"`
	Title             string         `json:"title"`
	StorefrontAddress *GoogleAddress `json:"storefrontAddress,omitempty"`
}

// GoogleReviewer identifies the author of a review.
type GoogleReviewer struct {
	DisplayName     string `json:"displayName"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// GoogleReviewReply is an existing owner reply attached to a review.
type GoogleReviewReply struct {
	Comment    string `json:"comment"`
	UpdateTime string `json:"updateTime"`
}

// GoogleReview is one review as returned by the reviews listing. StarRating
// is the platform enum (ONE..FIVE); Name is the full resource name
// accounts/{accountId}/locations/{locationId}/reviews/{reviewId}.
type GoogleReview struct {
	Name        string             `json:"name"`
	ReviewID    string             `json:"reviewId"`
	Reviewer    GoogleReviewer     `json:"reviewer"`
	StarRating  string             `json:"starRating"`
	Comment     string             `json:"comment,omitempty"`
	CreateTime  string             `json:"createTime"`
	UpdateTime  string             `json:"updateTime"`
	ReviewReply *GoogleReviewReply `json:"reviewReply,omitempty"`
}

// GoogleReviewPage is one page of the paginated reviews listing. An empty
// NextPageToken means the listing is exhausted.
type GoogleReviewPage struct {
	Reviews       []GoogleReview `json:"reviews"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

// ReplyResult reports the outcome of a reply mutation without raising an
// error; callers must check Success.
type ReplyResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
