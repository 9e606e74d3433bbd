// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "MediQuick"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTokenExpiry = time.Hour
	return cfg
}

func newAuthFixture() (*gin.Engine, *session.Service) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	sessions := session.NewService(store.NewMemoryStore(), logger)
	h := NewAuthHandler(sessions, authTestConfig())

	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r, sessions
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRejectsBadPhone(t *testing.T) {
	r, sessions := newAuthFixture()

	w := postLogin(r, `{"name":"Asha","phone":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10 digits")

	// The form rejection never reaches the session
	assert.False(t, sessions.IsAuthenticated())
}

func TestLoginRejectsMissingName(t *testing.T) {
	r, sessions := newAuthFixture()

	w := postLogin(r, `{"name":" ","phone":"9876543210"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, sessions.IsAuthenticated())
}

func TestLoginIssuesToken(t *testing.T) {
	r, sessions := newAuthFixture()

	w := postLogin(r, `{"name":"Asha","phone":"9876543210"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	u, ok := sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "9876543210", u.Phone)
}

func TestProfileReflectsTokenClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	sessions := session.NewService(store.NewMemoryStore(), logger)
	h := NewAuthHandler(sessions, authTestConfig())

	// Ravi signed in most recently, so the shared session holds him.
	require.NoError(t, sessions.Login(session.User{Name: "Ravi", Phone: "9123456780"}))

	r := gin.New()
	r.GET("/auth/profile", func(c *gin.Context) {
		c.Set("user_name", "Asha")
		c.Set("user_phone", "9876543210")
		c.Next()
	}, h.Profile)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	r.ServeHTTP(w, req)

	// A valid token for Asha sees Asha, not the session's occupant.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9876543210")
	assert.NotContains(t, w.Body.String(), "9123456780")
}
