package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"granitereply/domain/dto"
	"granitereply/domain/repository"
	"granitereply/infrastructure/configuration"
	"granitereply/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const (
	accountManagementBase = "https://mybusinessaccountmanagement.googleapis.com/v1"
	businessInfoBase      = "https://mybusinessbusinessinformation.googleapis.com/v1"
	reviewsBase           = "https://mybusiness.googleapis.com/v4"
	tokenEndpoint         = "https://oauth2.googleapis.com/token"

	businessScope = "https://www.googleapis.com/auth/business.manage"
	emailScope    = "https://www.googleapis.com/auth/userinfo.email"
)

// Config represents Business Profile API configuration.
type Config struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}

// Client calls the Google Business Profile management APIs. Listing calls
// never return errors; failures are logged and yield empty results so one bad
// account cannot abort a whole sync run.
type Client struct {
	httpClient  *http.Client
	oauthConfig *oauth2.Config

	accountMgmtBase  string
	businessInfoBase string
	reviewsBase      string
	tokenURL         string
}

// NewClient creates a Business Profile client from configuration.
func NewClient(cfg *Config) repository.IBusinessProfile {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{businessScope, emailScope},
			Endpoint:     googleoauth.Endpoint,
		},
		accountMgmtBase:  accountManagementBase,
		businessInfoBase: businessInfoBase,
		reviewsBase:      reviewsBase,
		tokenURL:         tokenEndpoint,
	}
}

// NewClientFromAppConfig wires the client from the global configuration.
func NewClientFromAppConfig() repository.IBusinessProfile {
	return NewClient(&Config{
		ClientID:     configuration.C.Google.ClientID,
		ClientSecret: configuration.C.Google.ClientSecret,
		RedirectURL:  configuration.C.Google.RedirectURI,
	})
}

// AuthCodeURL builds the consent URL for the connect flow. Offline access and
// forced consent are required to obtain a refresh token.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// ExchangeCode trades an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*dto.GoogleTokens, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return &dto.GoogleTokens{
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.Expiry,
	}, nil
}

// refreshResponse is the token endpoint's refresh grant payload.
type refreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// RefreshAccessToken exchanges a refresh token for a new access token.
// Returns nil on any failure; the caller treats nil as "token remains stale"
// and skips the connection.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) *dto.GoogleTokens {
	form := url.Values{}
	form.Set("client_id", c.oauthConfig.ClientID)
	form.Set("client_secret", c.oauthConfig.ClientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to build token refresh request")
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Token refresh request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		logger.GetLogger().WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Token refresh rejected")
		return nil
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to decode token refresh response")
		return nil
	}
	return &dto.GoogleTokens{
		AccessToken:    out.AccessToken,
		TokenExpiresAt: time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
	}
}

// getJSON performs an authenticated GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, accessToken, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("google api status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetAccounts lists accessible Business Profile accounts. Returns empty on
// failure.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) []dto.GoogleAccount {
	var out struct {
		Accounts []dto.GoogleAccount `json:"accounts"`
	}
	if err := c.getJSON(ctx, accessToken, c.accountMgmtBase+"/accounts", &out); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to fetch accounts")
		return []dto.GoogleAccount{}
	}
	if out.Accounts == nil {
		return []dto.GoogleAccount{}
	}
	return out.Accounts
}

// GetLocations lists locations under an account with a readMask limited to
// the fields the sync needs. Returns empty on failure.
func (c *Client) GetLocations(ctx context.Context, accessToken, accountID string) []dto.GoogleLocation {
	u := fmt.Sprintf("%s/accounts/%s/locations?readMask=%s",
		c.businessInfoBase, accountID, url.QueryEscape("name,title,storefrontAddress"))
	var out struct {
		Locations []dto.GoogleLocation `json:"locations"`
	}
	if err := c.getJSON(ctx, accessToken, u, &out); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":   err,
			"account": accountID,
		}).Error("Failed to fetch locations")
		return []dto.GoogleLocation{}
	}
	if out.Locations == nil {
		return []dto.GoogleLocation{}
	}
	return out.Locations
}

// reviewListOptions is the query string of the reviews listing call.
type reviewListOptions struct {
	PageSize  int    `url:"pageSize,omitempty"`
	PageToken string `url:"pageToken,omitempty"`
}

// GetReviews fetches one page of reviews for a location. Returns an empty
// page on failure; pagination stops when NextPageToken comes back empty.
func (c *Client) GetReviews(ctx context.Context, accessToken, accountID, locationID string, pageSize int, pageToken string) dto.GoogleReviewPage {
	opts := reviewListOptions{PageSize: pageSize, PageToken: pageToken}
	qs, err := query.Values(opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to encode review listing options")
		return dto.GoogleReviewPage{Reviews: []dto.GoogleReview{}}
	}

	u := fmt.Sprintf("%s/accounts/%s/locations/%s/reviews", c.reviewsBase, accountID, locationID)
	if encoded := qs.Encode(); encoded != "" {
		u += "?" + encoded
	}

	var page dto.GoogleReviewPage
	if err := c.getJSON(ctx, accessToken, u, &page); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"account":  accountID,
			"location": locationID,
		}).Error("Failed to fetch reviews")
		return dto.GoogleReviewPage{Reviews: []dto.GoogleReview{}}
	}
	if page.Reviews == nil {
		page.Reviews = []dto.GoogleReview{}
	}
	return page
}

// ReplyToReview creates or updates the owner reply on a review. The review
// resource name must be the full accounts/{a}/locations/{l}/reviews/{r} path.
func (c *Client) ReplyToReview(ctx context.Context, accessToken, reviewResourceName, text string) dto.ReplyResult {
	payload, err := json.Marshal(map[string]string{"comment": text})
	if err != nil {
		return dto.ReplyResult{Success: false, Error: err.Error()}
	}

	u := fmt.Sprintf("%s/%s/reply", c.reviewsBase, reviewResourceName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(payload))
	if err != nil {
		return dto.ReplyResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dto.ReplyResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return dto.ReplyResult{Success: false, Error: fmt.Sprintf("google api status %d: %s", resp.StatusCode, string(body))}
	}
	return dto.ReplyResult{Success: true}
}

// DeleteReply removes the owner reply from a review.
func (c *Client) DeleteReply(ctx context.Context, accessToken, reviewResourceName string) dto.ReplyResult {
	u := fmt.Sprintf("%s/%s/reply", c.reviewsBase, reviewResourceName)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return dto.ReplyResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dto.ReplyResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return dto.ReplyResult{Success: false, Error: fmt.Sprintf("google api status %d: %s", resp.StatusCode, string(body))}
	}
	return dto.ReplyResult{Success: true}
}

// StarRatingToNumber converts the platform rating enum to an integer 1-5.
// Unknown values map to 0.
func StarRatingToNumber(starRating string) int {
	switch starRating {
	case "ONE":
		return 1
	case "TWO":
		return 2
	case "THREE":
		return 3
	case "FOUR":
		return 4
	case "FIVE":
		return 5
	default:
		return 0
	}
}
