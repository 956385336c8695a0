package middleware

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

// ContextOrganizationKey is the gin context key storing the organization id
// a request is allowed to act for.
const ContextOrganizationKey = "activeOrganization"

type organizationFinder interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
}

// OrganizationScope resolves and authorizes the organization a request acts
// for. Organization actors are pinned to their own organization; a
// mismatching orgId query is rejected rather than silently corrected.
// Consultants must name a target organization and may only act for
// organizations in their own portfolio.
func OrganizationScope(organizations organizationFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		requested := strings.TrimSpace(c.Query("orgId"))

		switch claims.Role {
		case models.RoleOrganization:
			if claims.OrganizationID == "" {
				response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "no organization bound to credentials"))
				c.Abort()
				return
			}
			if requested != "" && requested != claims.OrganizationID {
				response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cannot act for another organization"))
				c.Abort()
				return
			}
			c.Set(ContextOrganizationKey, claims.OrganizationID)
		case models.RoleConsultant:
			if requested == "" {
				response.Error(c, appErrors.Clone(appErrors.ErrValidation, "orgId is required"))
				c.Abort()
				return
			}
			org, err := organizations.FindByID(c.Request.Context(), requested)
			if err != nil {
				if err == sql.ErrNoRows {
					response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "organization not found"))
				} else {
					response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load organization"))
				}
				c.Abort()
				return
			}
			if org.ConsultantID == nil || *org.ConsultantID != claims.UserID {
				response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "organization is not in your portfolio"))
				c.Abort()
				return
			}
			c.Set(ContextOrganizationKey, org.ID)
		default:
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "unknown role"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// OrganizationFromContext returns the authorized organization id, or empty
// when the scope middleware did not run.
func OrganizationFromContext(c *gin.Context) string {
	if v, exists := c.Get(ContextOrganizationKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
