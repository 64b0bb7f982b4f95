package middleware

import (
	"net/http"
	"strings"

	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/TemiKayode/wumikay-ventures/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, http.StatusUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.ErrorWithCode(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.ErrorWithCode(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("user_role")
		if !exists {
			response.ErrorWithCode(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}

		userRole, ok := val.(string)
		if !ok {
			response.ErrorWithCode(c, http.StatusForbidden, "Access denied")
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.ErrorWithCode(c, http.StatusForbidden, "Insufficient role privileges")
		c.Abort()
	}
}
