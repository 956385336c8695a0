package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

type fakeTopicRepo struct {
	topics []models.Topic

	created []*models.Topic
	updated map[string]models.TopicUpdate
	deleted []string

	listErr error
}

func newFakeTopicRepo(topics ...models.Topic) *fakeTopicRepo {
	return &fakeTopicRepo{topics: topics, updated: map[string]models.TopicUpdate{}}
}

func (f *fakeTopicRepo) ListByOrganization(_ context.Context, organizationID string) ([]models.Topic, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Topic, 0, len(f.topics))
	for _, t := range f.topics {
		if t.OrganizationID == organizationID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) FindByID(_ context.Context, id string) (*models.Topic, error) {
	for i := range f.topics {
		if f.topics[i].ID == id {
			topic := f.topics[i]
			return &topic, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTopicRepo) Create(_ context.Context, topic *models.Topic) error {
	topic.ID = "generated-id"
	f.created = append(f.created, topic)
	return nil
}

func (f *fakeTopicRepo) Update(_ context.Context, id string, update models.TopicUpdate) error {
	f.updated[id] = update
	return nil
}

func (f *fakeTopicRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func disabledCache() *CacheService {
	return NewCacheService(nil, nil, 0, nil, false)
}

func newTopicService(repo *fakeTopicRepo) *TopicService {
	return NewTopicService(repo, NewCatalogService(), disabledCache(), models.CategoryGovernance, nil, nil)
}

func TestToggleSelectsWhenAbsent(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicService(repo)

	result, err := svc.Toggle(context.Background(), "org-1", ToggleTopicRequest{
		Topic:    "climate-change",
		Category: "environmental",
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.False(t, result.Deleted)
	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.deleted)
	assert.Equal(t, "climate-change", repo.created[0].Topic)
	assert.Equal(t, models.CategoryEnvironmental, repo.created[0].Category)
	require.NotNil(t, repo.created[0].Subcategory)
	assert.Equal(t, "E1", *repo.created[0].Subcategory)
	assert.False(t, repo.created[0].IsCustom)
}

func TestToggleDeselectsWhenPresent(t *testing.T) {
	repo := newFakeTopicRepo(models.Topic{
		ID:             "topic-1",
		OrganizationID: "org-1",
		Topic:          "climate-change",
		Category:       models.CategoryEnvironmental,
	})
	svc := newTopicService(repo)

	result, err := svc.Toggle(context.Background(), "org-1", ToggleTopicRequest{
		Topic:    "climate-change",
		Category: "environmental",
	})
	require.NoError(t, err)

	assert.True(t, result.Deleted)
	assert.False(t, result.Created)
	assert.Equal(t, []string{"topic-1"}, repo.deleted)
	assert.Empty(t, repo.created)
}

func TestToggleRejectsUnknownTopic(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicService(repo)

	_, err := svc.Toggle(context.Background(), "org-1", ToggleTopicRequest{
		Topic:    "made-up-topic",
		Category: "environmental",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
	assert.Empty(t, repo.deleted)
}

func TestToggleRejectsMismatchedCategory(t *testing.T) {
	svc := newTopicService(newFakeTopicRepo())

	_, err := svc.Toggle(context.Background(), "org-1", ToggleTopicRequest{
		Topic:    "climate-change",
		Category: "governance",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAddCustomRejectsEmptyTextBeforeRepositoryCall(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicService(repo)

	_, err := svc.AddCustom(context.Background(), "org-1", AddCustomTopicRequest{Topic: "   "})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestAddCustomAppliesDefaultCategory(t *testing.T) {
	repo := newFakeTopicRepo()
	svc := newTopicService(repo)

	topic, err := svc.AddCustom(context.Background(), "org-1", AddCustomTopicRequest{Topic: "  Data sovereignty  "})
	require.NoError(t, err)

	assert.Equal(t, "Data sovereignty", topic.Topic)
	assert.Equal(t, models.CategoryGovernance, topic.Category)
	assert.True(t, topic.IsCustom)
	require.Len(t, repo.created, 1)
}

func TestAddCustomHonorsExplicitCategory(t *testing.T) {
	svc := newTopicService(newFakeTopicRepo())

	topic, err := svc.AddCustom(context.Background(), "org-1", AddCustomTopicRequest{
		Topic:    "Community water access",
		Category: "social",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategorySocial, topic.Category)
}

func TestRemoveCustomScopedToOrganization(t *testing.T) {
	repo := newFakeTopicRepo(models.Topic{
		ID:             "topic-1",
		OrganizationID: "org-2",
		Topic:          "Custom one",
		Category:       models.CategoryGovernance,
		IsCustom:       true,
	})
	svc := newTopicService(repo)

	err := svc.RemoveCustom(context.Background(), "org-1", "topic-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deleted)
}

func TestRemoveCustomRejectsCatalogTopics(t *testing.T) {
	repo := newFakeTopicRepo(models.Topic{
		ID:             "topic-1",
		OrganizationID: "org-1",
		Topic:          "climate-change",
		Category:       models.CategoryEnvironmental,
		IsCustom:       false,
	})
	svc := newTopicService(repo)

	err := svc.RemoveCustom(context.Background(), "org-1", "topic-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deleted)
}

func TestRemoveCustomDeletes(t *testing.T) {
	repo := newFakeTopicRepo(models.Topic{
		ID:             "topic-1",
		OrganizationID: "org-1",
		Topic:          "Custom one",
		Category:       models.CategoryGovernance,
		IsCustom:       true,
	})
	svc := newTopicService(repo)

	require.NoError(t, svc.RemoveCustom(context.Background(), "org-1", "topic-1"))
	assert.Equal(t, []string{"topic-1"}, repo.deleted)
}
