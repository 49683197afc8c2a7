package middleware

import (
	"net/http"
	"strings"

	"mingo-hotel-api/config"
	"mingo-hotel-api/models"
	"mingo-hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey holds the authenticated *models.User for the request.
const ContextUserKey = "authUser"

// JWTAuth validates the bearer token and loads the user with its role into
// the request context. The user is re-read per request so role changes and
// deletions take effect without waiting for token expiry.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization header missing or malformed")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, _, err := utils.ParseAccessToken(secret, token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.Preload("Role").First(&user, userID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Account no longer exists")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by JWTAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequireRole gates a route group to a single role name.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.RoleName() != role {
			utils.JSONError(c, http.StatusForbidden, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
