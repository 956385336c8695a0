package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/materiality-api/internal/materiality"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

// ScoreTopicRequest carries the three scoring inputs plus an optional
// justification note. The justification is a pointer so an explicit empty
// value clears a previously stored note, while an absent field keeps it.
type ScoreTopicRequest struct {
	FinancialImpactScore int     `json:"financial_impact_score" validate:"min=0,max=5"`
	ImpactOnStakeholders int     `json:"impact_on_stakeholders" validate:"min=0,max=5"`
	ConcernLevel         string  `json:"stakeholder_concern_level" validate:"required,oneof=low medium high"`
	ScoringJustification *string `json:"scoring_justification"`
}

// ReportTopicRequest carries the narrative report fields for a material topic.
type ReportTopicRequest struct {
	WhyMaterial        *string `json:"why_material"`
	ManagementResponse *string `json:"management_response"`
}

// ScoringService applies scores to topics and derives the materiality index
// and classification in the same write, so raw inputs and derived values
// never diverge in storage.
type ScoringService struct {
	topics    topicRepo
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScoringService constructs the scoring service.
func NewScoringService(topics topicRepo, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ScoringService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringService{topics: topics, cache: cache, validator: validate, logger: logger}
}

func (s *ScoringService) loadOwned(ctx context.Context, organizationID, topicID string) (*models.Topic, error) {
	topic, err := s.topics.FindByID(ctx, topicID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "topic not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load topic")
	}
	if topic.OrganizationID != organizationID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "topic belongs to another organization")
	}
	return topic, nil
}

// Score validates the inputs, computes the composite index and materiality
// flag and persists everything in a single partial update. The updated topic
// is returned with derived fields applied.
func (s *ScoringService) Score(ctx context.Context, organizationID, topicID string, req ScoreTopicRequest) (*models.Topic, error) {
	if organizationID == "" || topicID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "organization id and topic id are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scoring payload")
	}
	level := models.ConcernLevel(req.ConcernLevel)
	if !level.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown concern level")
	}

	topic, err := s.loadOwned(ctx, organizationID, topicID)
	if err != nil {
		return nil, err
	}

	index := materiality.Index(req.FinancialImpactScore, req.ImpactOnStakeholders, level)
	isMaterial := materiality.IsMaterial(index)

	update := models.TopicUpdate{
		FinancialImpactScore: &req.FinancialImpactScore,
		ImpactOnStakeholders: &req.ImpactOnStakeholders,
		ConcernLevel:         &level,
		MaterialityIndex:     &index,
		IsMaterial:           &isMaterial,
	}
	if req.ScoringJustification != nil {
		justification := strings.TrimSpace(*req.ScoringJustification)
		update.ScoringJustification = &justification
	}
	if err := s.topics.Update(ctx, topicID, update); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store scores")
	}
	s.invalidate(ctx, organizationID)

	topic.FinancialImpactScore = update.FinancialImpactScore
	topic.ImpactOnStakeholders = update.ImpactOnStakeholders
	topic.ConcernLevel = update.ConcernLevel
	topic.MaterialityIndex = update.MaterialityIndex
	topic.IsMaterial = update.IsMaterial
	if update.ScoringJustification != nil {
		topic.ScoringJustification = update.ScoringJustification
	}
	return topic, nil
}

// UpdateReport writes the narrative report fields of a material topic. Fields
// absent from the request are left untouched.
func (s *ScoringService) UpdateReport(ctx context.Context, organizationID, topicID string, req ReportTopicRequest) (*models.Topic, error) {
	if organizationID == "" || topicID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "organization id and topic id are required")
	}
	topic, err := s.loadOwned(ctx, organizationID, topicID)
	if err != nil {
		return nil, err
	}
	if topic.IsMaterial == nil || !*topic.IsMaterial {
		return nil, appErrors.Clone(appErrors.ErrValidation, "only material topics carry report fields")
	}

	update := models.TopicUpdate{
		WhyMaterial:        req.WhyMaterial,
		ManagementResponse: req.ManagementResponse,
	}
	if update.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no report fields provided")
	}
	if err := s.topics.Update(ctx, topicID, update); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store report fields")
	}
	s.invalidate(ctx, organizationID)

	if req.WhyMaterial != nil {
		topic.WhyMaterial = req.WhyMaterial
	}
	if req.ManagementResponse != nil {
		topic.ManagementResponse = req.ManagementResponse
	}
	return topic, nil
}

func (s *ScoringService) invalidate(ctx context.Context, organizationID string) {
	if err := s.cache.Invalidate(ctx, assessmentCachePattern(organizationID)); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("organization_id", organizationID), zap.Error(err))
	}
}
