package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/handler/http/dto"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthHandler signs users up or in through Google. The provider has already
// verified email ownership, so no pending-verification step applies.
type OAuthHandler struct {
	AuthUseCase  usecasecontract.IAuthUseCase
	Config       usecasecontract.IConfigProvider
	ClientID     string
	ClientSecret string
	CookieSecure bool
}

func NewOAuthHandler(uc usecasecontract.IAuthUseCase, cfg usecasecontract.IConfigProvider, clientID, clientSecret string, cookieSecure bool) *OAuthHandler {
	return &OAuthHandler{
		AuthUseCase:  uc,
		Config:       cfg,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		CookieSecure: cookieSecure,
	}
}

type googleUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (h *OAuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.Config.GetAppBaseURL() + "/api/v1/users/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// HandleGoogleLogin redirects to Google's consent screen with a CSRF state
// cookie pinned to this browser.
func (h *OAuthHandler) HandleGoogleLogin(c *gin.Context) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to generate CSRF state token")
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthState", state, 300, "/", "", h.CookieSecure, true)

	c.Redirect(http.StatusTemporaryRedirect, h.googleOauthConfig().AuthCodeURL(state))
}

// HandleGoogleCallback exchanges the authorization code, fetches the Google
// profile and logs the user in, creating the account on first contact.
func (h *OAuthHandler) HandleGoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie("oauthState")
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	c.SetCookie("oauthState", "", -1, "/", "", h.CookieSecure, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := c.Request.Context()
	token, err := h.googleOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to exchange authorization code")
		return
	}

	client := h.googleOauthConfig().Client(requestCtx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to fetch user info")
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to decode user info")
		return
	}

	user, sessionToken, err := h.AuthUseCase.LoginWithGoogle(requestCtx, info.GivenName, info.FamilyName, info.Email)
	if err != nil {
		RespondError(c, err)
		return
	}

	maxAge := int(h.Config.GetSessionTokenExpiry().Seconds())
	c.SetCookie(sessionCookieName, sessionToken, maxAge, "/", "", h.CookieSecure, true)
	TokenHandler(c, http.StatusOK, sessionToken, gin.H{"user": dto.ToUserResponse(user)})
}
