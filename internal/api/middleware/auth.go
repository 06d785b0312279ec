package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/config"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.SendUnauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// RequireRole is the single authorization gate for role-protected routes.
// The capability check always consults the role store rather than token
// claims, so revoking a role takes effect immediately.
func RequireRole(authService *services.AuthService, roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 || !authService.HasRole(userID, roleName) {
			utils.SendForbidden(c, "You do not have permission to access this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}
