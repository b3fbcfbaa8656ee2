package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub/internal/domain/model"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"
	authCookieName   = "learnhub_token"
)

// SessionGuard is the session surface the middleware consults.
type SessionGuard interface {
	ParseToken(token string) (int64, error)
	CurrentUser() *model.PublicUser
	IsAdmin() bool
}

// SessionRequired ensures the request carries a valid token matching the
// current session before the handler runs.
func SessionRequired(guard SessionGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := guard.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		current := guard.CurrentUser()
		if current == nil || current.ID != userID {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AdminRequired gates a route behind the admin flag.
func AdminRequired(guard SessionGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if guard.CurrentUser() == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !guard.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
