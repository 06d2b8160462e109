package middleware

import (
	"net/http"
	"strings"

	"tripdesk/internal/domain"
	jwtsvc "tripdesk/internal/pkg/jwt"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores user_id and role in the
// request context.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// SessionFrom rebuilds the caller identity placed by JWTAuth. The bool is
// false on routes that skipped the middleware.
func SessionFrom(c *gin.Context) (domain.Session, bool) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		return domain.Session{}, false
	}
	return domain.Session{
		UserID: userID,
		Role:   domain.UserRole(c.GetString("role")),
	}, true
}
