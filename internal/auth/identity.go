package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/planner-backend/internal/users"
)

type UserEnsurer interface {
	EnsureUser(ctx context.Context, u users.UpsertUser) (string, error)
}

// Identity resolves the caller and stores its owner id in the gin context.
// With a verifier a Bearer ID token is mandatory; without one the X-User-Id
// header is trusted and devUID is used when it is absent.
func Identity(verifier TokenVerifier, ensurer UserEnsurer, devUID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var u users.UpsertUser

		if verifier != nil {
			token := extractToken(c)
			if token == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
				return
			}

			decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}

			u.ExternalUID = decoded.UID
			if email, ok := decoded.Claims["email"].(string); ok {
				u.Email = email
			}
			if name, ok := decoded.Claims["name"].(string); ok {
				u.DisplayName = name
			}
		} else {
			u.ExternalUID = strings.TrimSpace(c.GetHeader("X-User-Id"))
			if u.ExternalUID == "" {
				u.ExternalUID = devUID
			}
			u.Email = c.GetHeader("X-User-Email")
			u.DisplayName = c.GetHeader("X-User-Name")
		}

		ownerID, err := ensurer.EnsureUser(c.Request.Context(), u)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set(CtxExternalUID, u.ExternalUID)
		c.Set(CtxOwnerID, ownerID)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
