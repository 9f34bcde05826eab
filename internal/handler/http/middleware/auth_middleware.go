package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/handler/http/dto"
	"github.com/ireporter/api/internal/usecase"
)

const sessionCookieName = "jwt"

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope{Status: "fail", Message: message})
}

// extractToken pulls the session token from the Authorization header, falling
// back to the session cookie for browser clients.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// Protect verifies the session token, re-reads the principal and rejects
// tokens issued before the last password change. The user is stored on the
// context under "user" and "userID" for downstream handlers.
func Protect(tokens usecase.SessionTokenService, users contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "You are not logged in! Please log in to get access.")
			return
		}

		claims, err := tokens.VerifySessionToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid token. Please log in again!")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID, false)
		if err != nil {
			abortUnauthorized(c, "The user belonging to this token does no longer exist.")
			return
		}

		if user.PasswordChangedAfter(claims.IssuedAt) {
			abortUnauthorized(c, "User recently changed password! Please log in again.")
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
