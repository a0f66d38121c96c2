package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/dinehub/reservation-app/utils"
)

// AuthMiddleware requires a valid Bearer token and stores the user id and
// role on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "invalid token format")
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || claims == nil || claims.UserID == 0 {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole allows only the listed roles past; admin always passes.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			abortUnauthorized(c, "unauthorized")
			return
		}
		if userRole == "admin" {
			c.Next()
			return
		}
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}
		utils.RespondError(c, &utils.APIError{
			Status:  http.StatusForbidden,
			Message: "insufficient role",
		})
		c.Abort()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	utils.RespondError(c, &utils.APIError{
		Status:  http.StatusUnauthorized,
		Message: message,
	})
	c.Abort()
}
