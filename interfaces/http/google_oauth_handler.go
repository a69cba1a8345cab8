package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"granitereply/domain/model"
	"granitereply/domain/repository"
	"granitereply/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type IGoogleOAuthHandler interface {
	GetAuthURL(c *gin.Context)
	Callback(c *gin.Context)
}

type oauthState struct {
	organizationID string
	expiry         time.Time
}

type googleOAuthHandler struct {
	profile  repository.IBusinessProfile
	connRepo repository.IPlatformConnection
	stateMu  sync.Mutex
	states   map[string]oauthState
}

func NewGoogleOAuthHandler(profile repository.IBusinessProfile, connRepo repository.IPlatformConnection) IGoogleOAuthHandler {
	return &googleOAuthHandler{profile: profile, connRepo: connRepo, states: map[string]oauthState{}}
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// GetAuthURL builds the Google consent URL (user must approve in browser).
// The organization is bound to the state so the callback can attribute the
// connection.
func (h *googleOAuthHandler) GetAuthURL(c *gin.Context) {
	organizationID := c.Query("organizationId")
	if organizationID == "" {
		organizationID = c.GetString("organization_id")
	}
	if organizationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organizationId is required"})
		return
	}

	state := randomState()
	h.stateMu.Lock()
	h.states[state] = oauthState{organizationID: organizationID, expiry: time.Now().Add(10 * time.Minute)}
	h.stateMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"auth_url": h.profile.AuthCodeURL(state), "state": state})
}

// Callback exchanges the code for tokens and stores the connection.
func (h *googleOAuthHandler) Callback(c *gin.Context) {
	lg := logger.GetLogger()
	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	h.stateMu.Lock()
	st, ok := h.states[state]
	if ok && time.Now().After(st.expiry) {
		ok = false
	}
	if ok {
		delete(h.states, state)
	}
	h.stateMu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_state"})
		return
	}

	tokens, err := h.profile.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		lg.WithField("error", err).Error("Google code exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "token_exchange_failed"})
		return
	}

	conn := &model.PlatformConnection{
		OrganizationID: st.organizationID,
		Platform:       "google",
		AccessToken:    tokens.AccessToken,
	}
	if tokens.RefreshToken != "" {
		refresh := tokens.RefreshToken
		conn.RefreshToken = &refresh
	}
	if !tokens.TokenExpiresAt.IsZero() {
		expiry := tokens.TokenExpiresAt
		conn.TokenExpiresAt = &expiry
	}
	if err := h.connRepo.Upsert(c.Request.Context(), conn); err != nil {
		lg.WithField("error", err).Error("Failed to store platform connection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "connection_store_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "connection_id": conn.ID})
}
