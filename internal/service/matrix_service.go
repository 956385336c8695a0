package service

import (
	"context"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/materiality"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

type topicLister interface {
	List(ctx context.Context, organizationID string) ([]models.Topic, error)
}

// MatrixService plots scored topics onto the prioritization matrix.
type MatrixService struct {
	topics topicLister
	cfg    materiality.MatrixConfig
}

// NewMatrixService constructs the matrix service with the configured plot
// geometry.
func NewMatrixService(topics topicLister, cfg materiality.MatrixConfig) *MatrixService {
	if cfg.Size <= 0 {
		cfg = materiality.MatrixConfig{Size: 400, Padding: 40}
	}
	return &MatrixService{topics: topics, cfg: cfg}
}

// Build plots the organization's scored topics, optionally filtered by ESG
// category. An empty filter behaves like "all".
func (s *MatrixService) Build(ctx context.Context, organizationID, categoryFilter string) (*dto.MatrixResponse, error) {
	if categoryFilter == "" {
		categoryFilter = materiality.FilterAll
	}
	if categoryFilter != materiality.FilterAll && !models.TopicCategory(categoryFilter).Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown category filter")
	}

	topics, err := s.topics.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	points, summary := materiality.Plot(topics, categoryFilter, s.cfg)
	return &dto.MatrixResponse{
		OrganizationID: organizationID,
		Category:       categoryFilter,
		Size:           s.cfg.Size,
		Padding:        s.cfg.Padding,
		GuideX:         s.cfg.GuideX(),
		GuideY:         s.cfg.GuideY(),
		Points:         points,
		Summary:        summary,
	}, nil
}
