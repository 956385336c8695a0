package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/materiality-api/internal/materiality"
	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
)

func TestBuildMatrixUsesConfiguredGeometry(t *testing.T) {
	lister := &fakeTopicLister{topics: []models.Topic{
		scoredMaterialTopic("climate-change", 4.2, false),
	}}
	svc := NewMatrixService(lister, materiality.MatrixConfig{Size: 400, Padding: 40})

	matrix, err := svc.Build(context.Background(), "org-1", "")
	require.NoError(t, err)

	assert.Equal(t, materiality.FilterAll, matrix.Category)
	assert.Equal(t, 400.0, matrix.Size)
	assert.Equal(t, 232.0, matrix.GuideX)
	assert.Equal(t, 168.0, matrix.GuideY)
	require.Len(t, matrix.Points, 1)
	assert.Equal(t, 1, matrix.Summary.Plotted)
}

func TestBuildMatrixFiltersByCategory(t *testing.T) {
	social := scoredMaterialTopic("own-workforce", 3.4, false)
	social.Category = models.CategorySocial
	lister := &fakeTopicLister{topics: []models.Topic{
		scoredMaterialTopic("climate-change", 4.2, false),
		social,
	}}
	svc := NewMatrixService(lister, materiality.MatrixConfig{Size: 400, Padding: 40})

	matrix, err := svc.Build(context.Background(), "org-1", "social")
	require.NoError(t, err)

	require.Len(t, matrix.Points, 1)
	assert.Equal(t, "own-workforce", matrix.Points[0].Topic)
}

func TestBuildMatrixRejectsUnknownFilter(t *testing.T) {
	svc := NewMatrixService(&fakeTopicLister{}, materiality.MatrixConfig{Size: 400, Padding: 40})

	_, err := svc.Build(context.Background(), "org-1", "financial")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
