// Package middleware holds the gin middleware for authentication, role
// gating, and rate limiting.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/service"
)

const identityKey = "identity"

// ErrMissingAuthHeader marks a request without an Authorization header.
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// Auth verifies the bearer token, resolves it to a live account, and puts
// the resulting identity into the request context. The caller is resolved
// exactly once per request; handlers read it back via IdentityFrom.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	if authService == nil {
		panic("AuthService cannot be nil for Auth middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			if errors.Is(err, ErrMissingAuthHeader) {
				logrus.Warn("Auth middleware: missing Authorization header")
				abortUnauthorized(c, "Authorization header is required")
			} else {
				logrus.WithError(err).Warn("Auth middleware: malformed token format")
				abortUnauthorized(c, "Invalid token format")
			}
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				abortUnauthorized(c, "Invalid or expired token")
			} else {
				logrus.WithError(err).Error("Auth middleware: failed to resolve token")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Could not process token",
				})
			}
			return
		}

		c.Set(identityKey, identity)
		logrus.WithField("user_id", identity.UserID).Debug("Auth middleware: user authenticated")
		c.Next()
	}
}

// RequireAdmin gates a route group to admin callers. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			logrus.Warn("RequireAdmin: no identity in context, Auth middleware missing?")
			abortUnauthorized(c, "User not authenticated")
			return
		}
		if !identity.IsAdmin() {
			logrus.WithField("user_id", identity.UserID).Warn("RequireAdmin: non-admin caller rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom reads the caller identity the Auth middleware stored.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}

// extractToken pulls the bearer token out of the Authorization header.
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", jwt.ErrTokenMalformed
	}
	return parts[1], nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
