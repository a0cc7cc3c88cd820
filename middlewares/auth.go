package middlewares

import (
	"strings"

	"github.com/quark1412/FoodyRush-sub000/pkg/resp"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks the bearer access token and stores the caller's
// identity on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.TokenType != utils.TokenTypeAccess {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("permissions", claims.Permissions)

		c.Next()
	}
}

// RequirePermission gates an admin screen behind one permission string.
// A missing permission answers 403 with the Forbidden error page triple.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range utils.CurrentPermissions(c) {
			if p == permission {
				c.Next()
				return
			}
		}
		resp.Forbidden(c, "you do not have permission to access this page")
		c.Abort()
	}
}
