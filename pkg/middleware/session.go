package middleware

import (
	"inventory-manager/internal/domain"
	"inventory-manager/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Identity reports the signed-in user of the running client
type Identity interface {
	CurrentUser() (domain.User, bool)
}

// UserContextKey holds the signed-in domain.User in the gin context
const UserContextKey = "user"

// SessionRequired rejects requests while nobody is signed in
func SessionRequired(identity Identity, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := identity.CurrentUser()
		if !ok {
			logger.Warn("Request without session",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			stdErr := errors.NewUnauthorized("sign in required")
			c.AbortWithStatusJSON(stdErr.HTTPStatus(), stdErr)
			return
		}

		c.Set("username", user.Username)
		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AdminRequired rejects requests from non-admin users. It must run after SessionRequired.
func AdminRequired(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			logger.Warn("Admin access denied",
				zap.String("username", user.Username),
				zap.String("path", c.Request.URL.Path),
			)
			stdErr := errors.NewForbidden("admin access required")
			c.AbortWithStatusJSON(stdErr.HTTPStatus(), stdErr)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by SessionRequired
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}
