package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/service"
)

type noUserRepo struct{}

func (noUserRepo) FindByUsername(context.Context, string) (*models.User, error) {
	return nil, sql.ErrNoRows
}
func (noUserRepo) FindByID(context.Context, string) (*models.User, error) { return nil, sql.ErrNoRows }
func (noUserRepo) Create(context.Context, *models.User) error            { return nil }
func (noUserRepo) FindProfile(context.Context, string) (*models.Profile, error) {
	return nil, sql.ErrNoRows
}

func newAuthServiceForTest() *service.AuthService {
	return service.NewAuthService(noUserRepo{}, nil, nil, service.AuthConfig{
		AccessTokenSecret: "test-secret",
		AccessTokenExpiry: time.Hour,
	})
}

func issueToken(t *testing.T) string {
	t.Helper()
	claims := models.JWTClaims{
		UserID:   "u1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func protectedRouter(auth *service.AuthService, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := JWT(auth)
	if optional {
		mw = OptionalJWT(auth)
	}
	r.GET("/ping", mw, func(c *gin.Context) {
		_, authed := c.Get(ContextUserKey)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := protectedRouter(newAuthServiceForTest(), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	r := protectedRouter(newAuthServiceForTest(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	r := protectedRouter(newAuthServiceForTest(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTValidToken(t *testing.T) {
	auth := newAuthServiceForTest()
	r := protectedRouter(auth, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":true`)
}

func TestOptionalJWTWithoutToken(t *testing.T) {
	r := protectedRouter(newAuthServiceForTest(), true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)
}

func TestOptionalJWTWithBadToken(t *testing.T) {
	r := protectedRouter(newAuthServiceForTest(), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)
}
