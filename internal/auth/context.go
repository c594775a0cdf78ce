package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxExternalUID = "external_uid"
	CtxOwnerID     = "owner_id"
)

// ExternalUID returns the identity-provider subject set by Identity.
func ExternalUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxExternalUID))
}

// OwnerID returns the caller's users.id set by Identity.
func OwnerID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxOwnerID))
}
