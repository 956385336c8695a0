package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

type fakeCacheRepo struct {
	entries map[string][]byte
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	f.entries = map[string][]byte{}
	return nil
}

type fakeTopicLister struct {
	topics []models.Topic
	calls  int
	err    error
}

func (f *fakeTopicLister) List(_ context.Context, _ string) ([]models.Topic, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.topics, nil
}

func scoredMaterialTopic(id string, index float64, reported bool) models.Topic {
	financial, impact := 4, 4
	level := models.ConcernHigh
	material := index >= 3.0
	topic := models.Topic{
		ID:                   id,
		OrganizationID:       "org-1",
		Topic:                id,
		Category:             models.CategoryEnvironmental,
		FinancialImpactScore: &financial,
		ImpactOnStakeholders: &impact,
		ConcernLevel:         &level,
		MaterialityIndex:     &index,
		IsMaterial:           &material,
	}
	if reported {
		why := "matters"
		response := "handled"
		topic.WhyMaterial = &why
		topic.ManagementResponse = &response
	}
	return topic
}

func TestOverviewEmptySelection(t *testing.T) {
	svc := NewAssessmentService(&fakeTopicLister{}, disabledCache(), nil)

	overview, cacheHit, err := svc.Overview(context.Background(), "org-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)

	assert.Equal(t, 0, overview.Progress.TotalTopics)
	assert.Equal(t, 0, overview.Progress.OverallProgress)
	require.Len(t, overview.Stages, 4)
	for _, stage := range overview.Stages {
		assert.False(t, stage.Complete, "stage %s", stage.ID)
	}
}

func TestOverviewStageOrdering(t *testing.T) {
	lister := &fakeTopicLister{topics: []models.Topic{
		scoredMaterialTopic("climate-change", 4.0, true),
		scoredMaterialTopic("pollution", 3.4, true),
	}}
	svc := NewAssessmentService(lister, disabledCache(), nil)

	overview, _, err := svc.Overview(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Progress.TotalTopics)
	assert.Equal(t, 2, overview.Progress.ScoredTopics)
	assert.Equal(t, 2, overview.Progress.MaterialTopics)
	assert.Equal(t, 2, overview.Progress.CompletedReports)
	assert.Equal(t, 100, overview.Progress.OverallProgress)

	expected := []dto.StageID{dto.StageIdentification, dto.StageScoring, dto.StageMatrix, dto.StageReport}
	for i, stage := range overview.Stages {
		assert.Equal(t, expected[i], stage.ID)
		assert.True(t, stage.Complete, "stage %s", stage.ID)
	}
}

func TestOverviewPartialProgress(t *testing.T) {
	unscored := models.Topic{ID: "own-workforce", OrganizationID: "org-1", Topic: "own-workforce", Category: models.CategorySocial}
	lister := &fakeTopicLister{topics: []models.Topic{
		scoredMaterialTopic("climate-change", 4.0, false),
		unscored,
	}}
	svc := NewAssessmentService(lister, disabledCache(), nil)

	overview, _, err := svc.Overview(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Progress.TotalTopics)
	assert.Equal(t, 1, overview.Progress.ScoredTopics)
	assert.Equal(t, 0, overview.Progress.OverallProgress)

	byID := map[dto.StageID]bool{}
	for _, stage := range overview.Stages {
		byID[stage.ID] = stage.Complete
	}
	assert.True(t, byID[dto.StageIdentification])
	assert.False(t, byID[dto.StageScoring])
	assert.True(t, byID[dto.StageMatrix])
	assert.False(t, byID[dto.StageReport])
}

func TestOverviewServedFromCacheOnSecondCall(t *testing.T) {
	lister := &fakeTopicLister{topics: []models.Topic{
		scoredMaterialTopic("climate-change", 4.0, true),
	}}
	cacheSvc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)
	svc := NewAssessmentService(lister, cacheSvc, nil)

	first, hit, err := svc.Overview(context.Background(), "org-1")
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.Overview(context.Background(), "org-1")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, first.Progress, second.Progress)
}
