package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/handler/http/dto"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// sessionCookieName is the cookie carrying the session token for browser
// clients. API clients use the Authorization header instead.
const sessionCookieName = "jwt"

type AuthHandler struct {
	AuthUseCase  usecasecontract.IAuthUseCase
	Config       usecasecontract.IConfigProvider
	CookieSecure bool
}

func NewAuthHandler(uc usecasecontract.IAuthUseCase, cfg usecasecontract.IConfigProvider, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		AuthUseCase:  uc,
		Config:       cfg,
		CookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.Config.GetSessionTokenExpiry().Seconds())
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", h.CookieSecure, true)
}

// Signup captures credentials as a pending registration and emails a
// verification link. No account exists yet, so no token is issued.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.AuthUseCase.Signup(c.Request.Context(), req.Email, req.Password, req.PasswordConfirm); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "verification email sent, please check your inbox to complete your sign-up")
}

// CompleteSignup redeems the emailed verification token, creates the account
// and logs the new user in.
func (h *AuthHandler) CompleteSignup(c *gin.Context) {
	var req dto.CompleteSignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.AuthUseCase.CompleteSignup(c.Request.Context(), c.Param("token"), usecasecontract.CompleteSignupInput{
		Username:    req.Username,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Othernames:  req.Othernames,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	TokenHandler(c, http.StatusCreated, token, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.AuthUseCase.Login(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	TokenHandler(c, http.StatusOK, token, gin.H{"user": dto.ToUserResponse(user)})
}

// Logout overwrites the session cookie with a short-lived dummy value.
// Stateless tokens cannot be revoked server-side; the client simply stops
// holding one.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "loggedout", 10, "/", "", h.CookieSecure, true)
	MessageHandler(c, http.StatusOK, "logged out")
}

// ForgotPassword responds 200 whether or not the email is known, so account
// existence cannot be probed.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.AuthUseCase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "if that email is registered, a reset link is on its way")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.AuthUseCase.ResetPassword(c.Request.Context(), c.Param("token"), req.Password, req.PasswordConfirm)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	TokenHandler(c, http.StatusOK, token, gin.H{"user": dto.ToUserResponse(user)})
}

// UpdatePassword changes the password of the authenticated user and reissues
// the session token, since the change staled the old one.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID := c.GetString("userID")
	user, token, err := h.AuthUseCase.UpdatePassword(c.Request.Context(), userID, req.PasswordCurrent, req.Password, req.PasswordConfirm)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	TokenHandler(c, http.StatusOK, token, gin.H{"user": dto.ToUserResponse(user)})
}
