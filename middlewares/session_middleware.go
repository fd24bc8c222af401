// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sessionId"

// SessionMiddleware resolves the session cookie to a user before any meal
// handler runs. A missing cookie is rejected without touching the database;
// an unknown token gets the same answer. On success the resolved user is
// stashed in the gin context for the handlers downstream.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		svc := services.NewUserService(config.DB)
		user, err := svc.FindBySessionToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", *user)

		c.Next()
	}
}
