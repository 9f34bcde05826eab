package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/ireporter/api/internal/handler/http"
	mocks "github.com/ireporter/api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOAuthRouter(h *handler.OAuthHandler) *gin.Engine {
	r := gin.New()
	r.GET("/google/login", h.HandleGoogleLogin)
	r.GET("/google/callback", h.HandleGoogleCallback)
	return r
}

func TestGoogleLoginRedirectsWithStateCookie(t *testing.T) {
	h := handler.NewOAuthHandler(&mocks.MockAuthUsecase{}, stubHandlerConfig{}, "client-id", "client-secret", false)
	r := setupOAuthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/google/login", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	var stateCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "oauthState" {
			stateCookie = ck
		}
	}
	require.NotNil(t, stateCookie, "expected a CSRF state cookie")
	assert.NotEmpty(t, stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)

	// The consent URL carries the same state the cookie pins.
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, stateCookie.Value, location.Query().Get("state"))
	assert.Equal(t, "client-id", location.Query().Get("client_id"))
}

func TestGoogleCallbackRejectsMismatchedState(t *testing.T) {
	h := handler.NewOAuthHandler(&mocks.MockAuthUsecase{}, stubHandlerConfig{}, "client-id", "client-secret", false)
	r := setupOAuthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauthState", Value: "expected"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
