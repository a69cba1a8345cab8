package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"granitereply/domain/model"
	"granitereply/infrastructure/utils"
	"granitereply/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	users map[string]model.User
}

func (s *stubUserRepo) GetById(ctx context.Context, id int64) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}

func (s *stubUserRepo) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	if user, ok := s.users[userName]; ok {
		return user, nil
	}
	return model.User{}, errors.New("sql: no rows in result set")
}

func (s *stubUserRepo) CreateUser(ctx context.Context, user model.User) error {
	return nil
}

func newAuthRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Auth(repo, testSecret))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_name":       c.GetString("user_name"),
			"organization_id": c.GetString("organization_id"),
		})
	})
	return router
}

func issueToken(t *testing.T, userName, organizationID string, expiresAt time.Time) string {
	t.Helper()
	token, err := utils.GenerateToken(model.UserClaims{
		UserName:       userName,
		OrganizationID: organizationID,
		StandardClaims: jwt.StandardClaims{
			Issuer:    userName,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}, testSecret)
	require.NoError(t, err)
	return token
}

func TestAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "That's not even a token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{users: map[string]model.User{
		"maria": {ID: 1, UserName: "maria", OrganizationID: "org-1"},
	}})

	token := issueToken(t, "maria", "org-1", time.Now().Add(-time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Timing is everything")
}

func TestAuth_UnknownUser(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{})

	token := issueToken(t, "ghost", "org-1", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	router := newAuthRouter(&stubUserRepo{users: map[string]model.User{
		"maria": {ID: 1, UserName: "maria", OrganizationID: "org-1"},
	}})

	token := issueToken(t, "maria", "org-1", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_name":"maria"`)
	assert.Contains(t, w.Body.String(), `"organization_id":"org-1"`)
}
