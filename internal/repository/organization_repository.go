package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/materiality-api/internal/models"
)

// OrganizationRepository reads organization records.
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository constructs the repository.
func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// FindByID returns a single organization.
func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	const query = `SELECT id, name, consultant_id, created_at FROM organizations WHERE id = $1`
	var org models.Organization
	if err := r.db.GetContext(ctx, &org, query, id); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByConsultant returns the client organizations managed by a consultant.
func (r *OrganizationRepository) ListByConsultant(ctx context.Context, consultantID string) ([]models.Organization, error) {
	const query = `SELECT id, name, consultant_id, created_at FROM organizations
        WHERE consultant_id = $1 ORDER BY name ASC`
	var orgs []models.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, consultantID); err != nil {
		return nil, fmt.Errorf("list consultant organizations: %w", err)
	}
	return orgs, nil
}
