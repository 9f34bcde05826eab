package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/handler/http/dto"
)

// RestrictTo gates a route to the given roles. It must run after Protect.
// Only the role field decides; the legacy isAdmin flag is never consulted.
func RestrictTo(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope{
				Status:  "fail",
				Message: "You are not logged in! Please log in to get access.",
			})
			return
		}
		user := v.(*entity.User)

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorEnvelope{
			Status:  "fail",
			Message: "You do not have permission to perform this action",
		})
	}
}
