package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/middleware"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// resolveOrganizationID returns the organization the scope middleware
// authorized for this request. Ownership checks (organization actors pinned
// to their own id, consultants restricted to portfolio organizations) happen
// in middleware.OrganizationScope before any handler runs.
func resolveOrganizationID(c *gin.Context) (string, error) {
	if orgID := middleware.OrganizationFromContext(c); orgID != "" {
		return orgID, nil
	}
	return "", appErrors.ErrUnauthorized
}
