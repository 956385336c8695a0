package materiality

import "github.com/noah-isme/materiality-api/internal/models"

const maxScore = 5.0

// MatrixConfig holds the plot geometry. Size and Padding come from
// configuration; the reference layout is a 400pt square with 40pt padding.
type MatrixConfig struct {
	Size    float64
	Padding float64
}

// ChartSize returns the usable plot side length.
func (c MatrixConfig) ChartSize() float64 {
	return c.Size - 2*c.Padding
}

// GuideX returns the x position of the financial-score threshold line.
func (c MatrixConfig) GuideX() float64 {
	return MaterialThreshold/maxScore*c.ChartSize() + c.Padding
}

// GuideY returns the y position of the impact-score threshold line.
func (c MatrixConfig) GuideY() float64 {
	chart := c.ChartSize()
	return chart - MaterialThreshold/maxScore*chart + c.Padding
}

// Point is a plotted topic on the prioritization matrix.
type Point struct {
	TopicID          string               `json:"topic_id"`
	Topic            string               `json:"topic"`
	Category         models.TopicCategory `json:"category"`
	X                float64              `json:"x"`
	Y                float64              `json:"y"`
	Radius           float64              `json:"radius"`
	Fill             string               `json:"fill"`
	Stroke           string               `json:"stroke"`
	StrokeWidth      float64              `json:"stroke_width"`
	MaterialityIndex float64              `json:"materiality_index"`
	Level            Level                `json:"level"`
}

// Summary aggregates the plotted (filtered) set.
type Summary struct {
	Plotted        int `json:"plotted"`
	Material       int `json:"material"`
	HighlyMaterial int `json:"highly_material"`
}

// Category filter value admitting every topic.
const FilterAll = "all"

// Marker styling tables. Fill follows the ESG category, stroke emphasizes
// material topics.
const (
	fillEnvironmental = "#16a34a"
	fillSocial        = "#2563eb"
	fillGovernance    = "#9333ea"
	fillDefault       = "#6b7280"

	strokeMaterial = "#dc2626"
	strokeNeutral  = "#9ca3af"
)

// Radius maps a concern level to the marker radius.
func Radius(level *models.ConcernLevel) float64 {
	if level == nil {
		return 10
	}
	switch *level {
	case models.ConcernHigh:
		return 16
	case models.ConcernMedium:
		return 12
	case models.ConcernLow:
		return 8
	default:
		return 10
	}
}

// Fill maps a category to the marker fill color.
func Fill(category models.TopicCategory) string {
	switch category {
	case models.CategoryEnvironmental:
		return fillEnvironmental
	case models.CategorySocial:
		return fillSocial
	case models.CategoryGovernance:
		return fillGovernance
	default:
		return fillDefault
	}
}

// Position maps raw scores onto plot coordinates. The y axis is inverted so
// that higher stakeholder impact plots higher on screen.
func (c MatrixConfig) Position(financial, impact int) (x, y float64) {
	chart := c.ChartSize()
	x = float64(financial)/maxScore*chart + c.Padding
	y = chart - float64(impact)/maxScore*chart + c.Padding
	return x, y
}

// Plot filters topics by category, positions every fully scored topic and
// aggregates summary counts over the filtered set. Topics without a computed
// materiality index are excluded entirely.
func Plot(topics []models.Topic, categoryFilter string, cfg MatrixConfig) ([]Point, Summary) {
	points := make([]Point, 0, len(topics))
	var summary Summary

	for _, topic := range topics {
		if categoryFilter != "" && categoryFilter != FilterAll &&
			string(topic.Category) != categoryFilter {
			continue
		}
		if topic.MaterialityIndex == nil || !topic.Scored() {
			continue
		}

		index := *topic.MaterialityIndex
		x, y := cfg.Position(*topic.FinancialImpactScore, *topic.ImpactOnStakeholders)

		stroke, strokeWidth := strokeNeutral, 1.0
		if IsMaterial(index) {
			stroke, strokeWidth = strokeMaterial, 3.0
		}

		points = append(points, Point{
			TopicID:          topic.ID,
			Topic:            topic.Topic,
			Category:         topic.Category,
			X:                x,
			Y:                y,
			Radius:           Radius(topic.ConcernLevel),
			Fill:             Fill(topic.Category),
			Stroke:           stroke,
			StrokeWidth:      strokeWidth,
			MaterialityIndex: index,
			Level:            Classify(index),
		})

		summary.Plotted++
		if IsMaterial(index) {
			summary.Material++
		}
		if index >= 4.0 {
			summary.HighlyMaterial++
		}
	}

	return points, summary
}
