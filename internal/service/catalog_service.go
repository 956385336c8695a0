package service

import (
	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

// CatalogService exposes the predefined ESG topic taxonomy.
type CatalogService struct {
	lookup map[string]models.CatalogTopic
}

// NewCatalogService constructs the catalog service.
func NewCatalogService() *CatalogService {
	return &CatalogService{lookup: models.CatalogLookup()}
}

// Grouped returns the taxonomy grouped by ESG category, in catalog order.
func (s *CatalogService) Grouped() []dto.CatalogGroup {
	order := []models.TopicCategory{
		models.CategoryEnvironmental,
		models.CategorySocial,
		models.CategoryGovernance,
	}
	byCategory := make(map[models.TopicCategory][]models.CatalogTopic, len(order))
	for _, entry := range models.Catalog() {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}
	groups := make([]dto.CatalogGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, dto.CatalogGroup{Category: category, Topics: byCategory[category]})
	}
	return groups
}

// Resolve validates a slug/category/subcategory tuple against the catalog
// and returns the canonical entry.
func (s *CatalogService) Resolve(slug string, category models.TopicCategory, subcategory string) (*models.CatalogTopic, error) {
	entry, ok := s.lookup[slug]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown catalog topic")
	}
	if entry.Category != category {
		return nil, appErrors.Clone(appErrors.ErrValidation, "category does not match catalog topic")
	}
	if subcategory != "" && entry.Subcategory != subcategory {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subcategory does not match catalog topic")
	}
	return &entry, nil
}
