package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradervault/internal/cache"
)

const userIDKey = "auth_user_id"

// RevocationKey is the cache key a signed-out token is parked under.
func RevocationKey(jti string) string {
	return "auth:revoked:" + jti
}

// UserID returns the authenticated user's ID set by Middleware, or "".
func UserID(c *gin.Context) string {
	v, ok := c.Get(userIDKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Middleware verifies the Bearer token and injects the user ID. Health,
// docs, and the auth endpoints themselves stay open.
func Middleware(j JWT, revoked cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/healthz" || p == "/readyz" || p == "/docs" || strings.HasPrefix(p, "/api/v1/auth/") {
			c.Next()
			return
		}
		if !strings.HasPrefix(p, "/api/") {
			c.Next()
			return
		}

		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := j.Verify(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if IsRevoked(c.Request.Context(), revoked, claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}
		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

func IsRevoked(ctx context.Context, revoked cache.Store, jti string) bool {
	if revoked == nil || jti == "" {
		return false
	}
	_, found, err := revoked.Get(ctx, RevocationKey(jti))
	if err != nil {
		// A cache outage must not lock every user out.
		return false
	}
	return found
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
