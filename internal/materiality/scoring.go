package materiality

import (
	"math"

	"github.com/noah-isme/materiality-api/internal/models"
)

// Composite index weights: 40% financial impact, 40% stakeholder impact,
// 20% stakeholder concern.
const (
	FinancialWeight = 0.4
	ImpactWeight    = 0.4
	ConcernWeight   = 0.2
)

// MaterialThreshold is the index value at which a topic becomes material.
const MaterialThreshold = 3.0

// Level is the classification derived from the materiality index.
type Level string

const (
	LevelNotMaterial    Level = "Not material"
	LevelLowMateriality Level = "Low materiality"
	LevelMaterial       Level = "Material"
	LevelHighlyMaterial Level = "Highly material"
)

// StakeholderScore converts a concern level to its numeric contribution.
// Unknown or absent levels score as low; callers must not compute an index
// until a level was explicitly chosen.
func StakeholderScore(level models.ConcernLevel) int {
	switch level {
	case models.ConcernHigh:
		return 5
	case models.ConcernMedium:
		return 3
	default:
		return 1
	}
}

// Index computes the composite materiality index from the three scoring
// inputs, rounded to two decimal places. Financial and impact scores are
// expected in 0..5.
func Index(financial, impact int, level models.ConcernLevel) float64 {
	raw := float64(financial)*FinancialWeight +
		float64(impact)*ImpactWeight +
		float64(StakeholderScore(level))*ConcernWeight
	return math.Round(raw*100) / 100
}

// Classify maps an index onto a materiality level. Bands are half-open:
// boundary values fall into the higher band.
func Classify(index float64) Level {
	switch {
	case index >= 4.0:
		return LevelHighlyMaterial
	case index >= MaterialThreshold:
		return LevelMaterial
	case index >= 2.0:
		return LevelLowMateriality
	default:
		return LevelNotMaterial
	}
}

// IsMaterial reports whether the index meets the materiality cutoff.
func IsMaterial(index float64) bool {
	return index >= MaterialThreshold
}
