package service

import (
	"context"
	"database/sql"

	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

type organizationRepo interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	ListByConsultant(ctx context.Context, consultantID string) ([]models.Organization, error)
}

// OrganizationService resolves the organizations visible to an actor.
type OrganizationService struct {
	organizations organizationRepo
}

// NewOrganizationService constructs the organization service.
func NewOrganizationService(organizations organizationRepo) *OrganizationService {
	return &OrganizationService{organizations: organizations}
}

// Visible lists the organizations an actor may act for. Consultants see their
// managed portfolio; organization actors see only their own record.
func (s *OrganizationService) Visible(ctx context.Context, claims *models.JWTClaims) ([]models.Organization, error) {
	if claims == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "missing credentials")
	}
	switch claims.Role {
	case models.RoleConsultant:
		orgs, err := s.organizations.ListByConsultant(ctx, claims.UserID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list organizations")
		}
		return orgs, nil
	case models.RoleOrganization:
		org, err := s.organizations.FindByID(ctx, claims.OrganizationID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "organization not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load organization")
		}
		return []models.Organization{*org}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrForbidden, "unknown role")
	}
}
