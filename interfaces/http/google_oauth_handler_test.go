package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"granitereply/domain/dto"
	"granitereply/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfile struct {
	tokens      *dto.GoogleTokens
	exchangeErr error
}

func (s *stubProfile) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (s *stubProfile) ExchangeCode(ctx context.Context, code string) (*dto.GoogleTokens, error) {
	return s.tokens, s.exchangeErr
}

func (s *stubProfile) RefreshAccessToken(ctx context.Context, refreshToken string) *dto.GoogleTokens {
	return nil
}

func (s *stubProfile) GetAccounts(ctx context.Context, accessToken string) []dto.GoogleAccount {
	return nil
}

func (s *stubProfile) GetLocations(ctx context.Context, accessToken, accountID string) []dto.GoogleLocation {
	return nil
}

func (s *stubProfile) GetReviews(ctx context.Context, accessToken, accountID, locationID string, pageSize int, pageToken string) dto.GoogleReviewPage {
	return dto.GoogleReviewPage{}
}

func (s *stubProfile) ReplyToReview(ctx context.Context, accessToken, reviewResourceName, text string) dto.ReplyResult {
	return dto.ReplyResult{}
}

func (s *stubProfile) DeleteReply(ctx context.Context, accessToken, reviewResourceName string) dto.ReplyResult {
	return dto.ReplyResult{}
}

type stubConnectionRepo struct {
	upserted *model.PlatformConnection
	err      error
}

func (s *stubConnectionRepo) ListActive(ctx context.Context, platform string) ([]*model.PlatformConnection, error) {
	return nil, nil
}

func (s *stubConnectionRepo) GetActive(ctx context.Context, platform string) (*model.PlatformConnection, error) {
	return nil, errors.New("not found")
}

func (s *stubConnectionRepo) Upsert(ctx context.Context, conn *model.PlatformConnection) error {
	s.upserted = conn
	conn.ID = 1
	return s.err
}

func (s *stubConnectionRepo) UpdateTokens(ctx context.Context, id int64, tokens *model.PlatformConnection) error {
	return nil
}

func performGET(handler gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	handler(c)
	return w
}

func TestGetAuthURL_RequiresOrganization(t *testing.T) {
	handler := NewGoogleOAuthHandler(&stubProfile{}, &stubConnectionRepo{})

	w := performGET(handler.GetAuthURL, "/auth/google")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "organizationId is required")
}

func TestGetAuthURL_ReturnsConsentURL(t *testing.T) {
	handler := NewGoogleOAuthHandler(&stubProfile{}, &stubConnectionRepo{})

	w := performGET(handler.GetAuthURL, "/auth/google?organizationId=org-1")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["state"])
	assert.Contains(t, body["auth_url"], body["state"])
}

func TestCallback_InvalidState(t *testing.T) {
	handler := NewGoogleOAuthHandler(&stubProfile{}, &stubConnectionRepo{})

	w := performGET(handler.Callback, "/auth/google/callback?code=abc&state=forged")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestCallback_StoresConnection(t *testing.T) {
	connRepo := &stubConnectionRepo{}
	handler := NewGoogleOAuthHandler(&stubProfile{
		tokens: &dto.GoogleTokens{AccessToken: "token-1", RefreshToken: "refresh-1"},
	}, connRepo)

	w := performGET(handler.GetAuthURL, "/auth/google?organizationId=org-1")
	require.Equal(t, http.StatusOK, w.Code)
	var authBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authBody))

	w = performGET(handler.Callback, "/auth/google/callback?code=abc&state="+authBody["state"])

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, connRepo.upserted)
	assert.Equal(t, "org-1", connRepo.upserted.OrganizationID)
	assert.Equal(t, "google", connRepo.upserted.Platform)
	require.NotNil(t, connRepo.upserted.RefreshToken)
	assert.Equal(t, "refresh-1", *connRepo.upserted.RefreshToken)
}

func TestCallback_StateIsSingleUse(t *testing.T) {
	handler := NewGoogleOAuthHandler(&stubProfile{
		tokens: &dto.GoogleTokens{AccessToken: "token-1"},
	}, &stubConnectionRepo{})

	w := performGET(handler.GetAuthURL, "/auth/google?organizationId=org-1")
	var authBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authBody))

	first := performGET(handler.Callback, "/auth/google/callback?code=abc&state="+authBody["state"])
	assert.Equal(t, http.StatusOK, first.Code)

	second := performGET(handler.Callback, "/auth/google/callback?code=abc&state="+authBody["state"])
	assert.Equal(t, http.StatusBadRequest, second.Code)
}

func TestCallback_ExchangeFailure(t *testing.T) {
	handler := NewGoogleOAuthHandler(&stubProfile{
		exchangeErr: errors.New("invalid_grant"),
	}, &stubConnectionRepo{})

	w := performGET(handler.GetAuthURL, "/auth/google?organizationId=org-1")
	var authBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authBody))

	w = performGET(handler.Callback, "/auth/google/callback?code=bad&state="+authBody["state"])

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "token_exchange_failed")
}
