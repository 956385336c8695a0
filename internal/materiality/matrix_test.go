package materiality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/materiality-api/internal/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func levelPtr(v models.ConcernLevel) *models.ConcernLevel { return &v }

func scoredTopic(id string, category models.TopicCategory, financial, impact int, level models.ConcernLevel) models.Topic {
	index := Index(financial, impact, level)
	return models.Topic{
		ID:                   id,
		Topic:                id,
		Category:             category,
		FinancialImpactScore: intPtr(financial),
		ImpactOnStakeholders: intPtr(impact),
		ConcernLevel:         levelPtr(level),
		MaterialityIndex:     floatPtr(index),
		IsMaterial:           boolPtr(IsMaterial(index)),
	}
}

func TestMatrixPosition(t *testing.T) {
	cfg := MatrixConfig{Size: 400, Padding: 40}
	require.Equal(t, 320.0, cfg.ChartSize())

	x, y := cfg.Position(5, 5)
	assert.Equal(t, 360.0, x)
	assert.Equal(t, 40.0, y)

	x, y = cfg.Position(0, 0)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 360.0, y)

	// y axis is inverted: higher impact plots higher on screen.
	_, yLow := cfg.Position(3, 1)
	_, yHigh := cfg.Position(3, 4)
	assert.Less(t, yHigh, yLow)
}

func TestMatrixGuides(t *testing.T) {
	cfg := MatrixConfig{Size: 400, Padding: 40}
	assert.Equal(t, 232.0, cfg.GuideX())
	assert.Equal(t, 168.0, cfg.GuideY())
}

func TestRadiusByConcernLevel(t *testing.T) {
	assert.Equal(t, 16.0, Radius(levelPtr(models.ConcernHigh)))
	assert.Equal(t, 12.0, Radius(levelPtr(models.ConcernMedium)))
	assert.Equal(t, 8.0, Radius(levelPtr(models.ConcernLow)))
	assert.Equal(t, 10.0, Radius(nil))
}

func TestPlotExcludesUnscoredTopics(t *testing.T) {
	cfg := MatrixConfig{Size: 400, Padding: 40}
	topics := []models.Topic{
		scoredTopic("climate-change", models.CategoryEnvironmental, 4, 3, models.ConcernHigh),
		{ID: "pollution", Topic: "pollution", Category: models.CategoryEnvironmental},
		{ID: "own-workforce", Topic: "own-workforce", Category: models.CategorySocial, FinancialImpactScore: intPtr(2)},
	}

	points, summary := Plot(topics, FilterAll, cfg)
	require.Len(t, points, 1)
	assert.Equal(t, "climate-change", points[0].TopicID)
	assert.Equal(t, 1, summary.Plotted)
}

func TestPlotSummaryOverFilteredSet(t *testing.T) {
	cfg := MatrixConfig{Size: 400, Padding: 40}
	topics := []models.Topic{
		scoredTopic("climate-change", models.CategoryEnvironmental, 5, 5, models.ConcernHigh), // 5.00
		scoredTopic("pollution", models.CategoryEnvironmental, 4, 3, models.ConcernHigh),      // 3.80
		scoredTopic("own-workforce", models.CategorySocial, 1, 1, models.ConcernLow),          // 1.00
		scoredTopic("business-conduct", models.CategoryGovernance, 5, 4, models.ConcernHigh),  // 4.60
	}

	points, summary := Plot(topics, "environmental", cfg)
	require.Len(t, points, 2)
	assert.Equal(t, Summary{Plotted: 2, Material: 2, HighlyMaterial: 1}, summary)

	points, summary = Plot(topics, FilterAll, cfg)
	require.Len(t, points, 4)
	assert.Equal(t, Summary{Plotted: 4, Material: 3, HighlyMaterial: 2}, summary)
}

func TestPlotMarkerStyling(t *testing.T) {
	cfg := MatrixConfig{Size: 400, Padding: 40}
	topics := []models.Topic{
		scoredTopic("climate-change", models.CategoryEnvironmental, 5, 5, models.ConcernHigh),
		scoredTopic("own-workforce", models.CategorySocial, 1, 1, models.ConcernLow),
	}

	points, _ := Plot(topics, FilterAll, cfg)
	require.Len(t, points, 2)

	material := points[0]
	assert.Equal(t, "#16a34a", material.Fill)
	assert.Equal(t, "#dc2626", material.Stroke)
	assert.Equal(t, 3.0, material.StrokeWidth)
	assert.Equal(t, 16.0, material.Radius)

	immaterial := points[1]
	assert.Equal(t, "#2563eb", immaterial.Fill)
	assert.Equal(t, "#9ca3af", immaterial.Stroke)
	assert.Equal(t, 1.0, immaterial.StrokeWidth)
	assert.Equal(t, 8.0, immaterial.Radius)
}
