package middlewares

import (
	"net/http"

	"unityplates-backend/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

const identityKey = "email"

// RequireAuth gates a route behind a valid session cookie. Missing,
// malformed, badly signed and expired tokens all get the same 401; the
// database is never touched. On success the verified email is stored in
// the request context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(identityKey, identity.Email)
		c.Next()
	}
}

// RequireOwnership compares the named path parameter against the
// authenticated email and rejects mismatches before the handler runs.
// Must be registered after RequireAuth.
func RequireOwnership(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(identityKey)
		if email == "" || c.Param(param) != email {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}

// AuthenticatedEmail returns the verified email set by RequireAuth, or
// "" on an unauthenticated route.
func AuthenticatedEmail(c *gin.Context) string {
	return c.GetString(identityKey)
}
