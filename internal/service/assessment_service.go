package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/materiality"
)

// AssessmentService derives the aggregate workflow view: progress counters
// and the four ordered stage badges.
type AssessmentService struct {
	topics topicLister
	cache  *CacheService
	logger *zap.Logger
}

// NewAssessmentService constructs the assessment overview service.
func NewAssessmentService(topics topicLister, cache *CacheService, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{topics: topics, cache: cache, logger: logger}
}

func overviewCacheKey(organizationID string) string {
	return fmt.Sprintf("assessment:%s", organizationID)
}

// Overview recomputes the workflow snapshot from the topic list. Every call
// re-derives progress and stage flags; nothing is stored incrementally. The
// boolean reports whether the snapshot came from cache.
func (s *AssessmentService) Overview(ctx context.Context, organizationID string) (*dto.OverviewResponse, bool, error) {
	key := overviewCacheKey(organizationID)
	if s.cache.Enabled() {
		var cached dto.OverviewResponse
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	topics, err := s.topics.List(ctx, organizationID)
	if err != nil {
		return nil, false, err
	}

	progress := materiality.Track(topics)
	stages := materiality.Stages(progress)

	overview := &dto.OverviewResponse{
		OrganizationID: organizationID,
		Progress:       progress,
		Stages: []dto.StageStatus{
			{ID: dto.StageIdentification, Label: "Topic identification", Complete: stages.Identification},
			{ID: dto.StageScoring, Label: "Impact scoring", Complete: stages.Scoring},
			{ID: dto.StageMatrix, Label: "Materiality matrix", Complete: stages.Matrix},
			{ID: dto.StageReport, Label: "Final report", Complete: stages.Report},
		},
	}
	if err := s.cache.Set(ctx, key, overview, 0); err != nil {
		s.logger.Warn("overview cache write failed", zap.String("organization_id", organizationID), zap.Error(err))
	}
	return overview, false, nil
}
