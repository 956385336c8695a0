package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

type topicRepo interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]models.Topic, error)
	FindByID(ctx context.Context, id string) (*models.Topic, error)
	Create(ctx context.Context, topic *models.Topic) error
	Update(ctx context.Context, id string, update models.TopicUpdate) error
	Delete(ctx context.Context, id string) error
}

type catalogResolver interface {
	Resolve(slug string, category models.TopicCategory, subcategory string) (*models.CatalogTopic, error)
}

// ToggleTopicRequest toggles a catalog topic on or off.
type ToggleTopicRequest struct {
	Topic       string `json:"topic" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=environmental social governance"`
	Subcategory string `json:"subcategory"`
}

// AddCustomTopicRequest creates an organization-defined topic. Category is
// optional; absent values fall back to the configured default bucket.
type AddCustomTopicRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category" validate:"omitempty,oneof=environmental social governance"`
}

// ToggleResult reports the single repository operation a toggle produced.
type ToggleResult struct {
	Topic   *models.Topic `json:"topic,omitempty"`
	Created bool          `json:"created"`
	Deleted bool          `json:"deleted"`
}

// TopicService reconciles the desired topic selection against repository
// state. The fetched list is the single source of truth: selection state is
// always re-derived from it, never maintained independently.
type TopicService struct {
	topics          topicRepo
	catalog         catalogResolver
	cache           *CacheService
	validator       *validator.Validate
	logger          *zap.Logger
	defaultCategory models.TopicCategory
}

// NewTopicService constructs the topic selection service.
func NewTopicService(topics topicRepo, catalog catalogResolver, cache *CacheService, defaultCategory models.TopicCategory, validate *validator.Validate, logger *zap.Logger) *TopicService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if !defaultCategory.Valid() {
		defaultCategory = models.CategoryGovernance
	}
	return &TopicService{
		topics:          topics,
		catalog:         catalog,
		cache:           cache,
		validator:       validate,
		logger:          logger,
		defaultCategory: defaultCategory,
	}
}

func topicListCacheKey(organizationID string) string {
	return fmt.Sprintf("topics:%s", organizationID)
}

// assessmentCachePattern covers every cached snapshot derived from one
// organization's topic list.
func assessmentCachePattern(organizationID string) string {
	return fmt.Sprintf("*:%s*", organizationID)
}

// List returns the authoritative topic snapshot for an organization. Cache
// keys embed the organization id so a snapshot can never leak across
// organizations when the active organization changes.
func (s *TopicService) List(ctx context.Context, organizationID string) ([]models.Topic, error) {
	if organizationID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "organization id is required")
	}
	key := topicListCacheKey(organizationID)
	if s.cache.Enabled() {
		var cached []models.Topic
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}
	topics, err := s.topics.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list topics")
	}
	if err := s.cache.Set(ctx, key, topics, 0); err != nil {
		s.logger.Warn("topic list cache write failed", zap.String("organization_id", organizationID), zap.Error(err))
	}
	return topics, nil
}

// Toggle selects or deselects a catalog topic. Exactly one repository
// mutation is issued: a delete when a matching record exists, a create
// otherwise.
func (s *TopicService) Toggle(ctx context.Context, organizationID string, req ToggleTopicRequest) (*ToggleResult, error) {
	if organizationID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "organization id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid toggle payload")
	}
	entry, err := s.catalog.Resolve(req.Topic, models.TopicCategory(req.Category), req.Subcategory)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load topic selection")
	}
	for _, existing := range topics {
		if !existing.IsCustom && existing.Topic == entry.Slug {
			if err := s.topics.Delete(ctx, existing.ID); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deselect topic")
			}
			s.invalidate(ctx, organizationID)
			return &ToggleResult{Deleted: true}, nil
		}
	}

	subcategory := entry.Subcategory
	topic := &models.Topic{
		OrganizationID: organizationID,
		Topic:          entry.Slug,
		Category:       entry.Category,
		Subcategory:    &subcategory,
		IsCustom:       false,
	}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to select topic")
	}
	s.invalidate(ctx, organizationID)
	return &ToggleResult{Topic: topic, Created: true}, nil
}

// AddCustom creates an organization-defined topic. Empty text is rejected
// before any repository call.
func (s *TopicService) AddCustom(ctx context.Context, organizationID string, req AddCustomTopicRequest) (*models.Topic, error) {
	if organizationID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "organization id is required")
	}
	text := strings.TrimSpace(req.Topic)
	if text == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "topic name is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid custom topic payload")
	}

	category := s.defaultCategory
	if req.Category != "" {
		category = models.TopicCategory(req.Category)
	}

	topic := &models.Topic{
		OrganizationID: organizationID,
		Topic:          text,
		Category:       category,
		IsCustom:       true,
	}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create custom topic")
	}
	s.invalidate(ctx, organizationID)
	return topic, nil
}

// RemoveCustom deletes a custom topic by id, scoped to the organization.
func (s *TopicService) RemoveCustom(ctx context.Context, organizationID, topicID string) error {
	if organizationID == "" || topicID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "organization id and topic id are required")
	}
	topic, err := s.topics.FindByID(ctx, topicID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "topic not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load topic")
	}
	if topic.OrganizationID != organizationID {
		return appErrors.Clone(appErrors.ErrForbidden, "topic belongs to another organization")
	}
	if !topic.IsCustom {
		return appErrors.Clone(appErrors.ErrValidation, "catalog topics are removed by toggling")
	}
	if err := s.topics.Delete(ctx, topicID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete custom topic")
	}
	s.invalidate(ctx, organizationID)
	return nil
}

func (s *TopicService) invalidate(ctx context.Context, organizationID string) {
	if err := s.cache.Invalidate(ctx, assessmentCachePattern(organizationID)); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("organization_id", organizationID), zap.Error(err))
	}
}
