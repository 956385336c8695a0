package materiality

import (
	"math"

	"github.com/noah-isme/materiality-api/internal/models"
)

// Progress aggregates completion statistics over one organization's topics.
// OverallProgress is defined against report completion: the assessment is
// done when the narrative report is written, not when scores are entered.
type Progress struct {
	TotalTopics      int `json:"total_topics"`
	ScoredTopics     int `json:"scored_topics"`
	MaterialTopics   int `json:"material_topics"`
	CompletedReports int `json:"completed_reports"`
	OverallProgress  int `json:"overall_progress"`
}

// StageCompletion flags each of the four assessment stages.
type StageCompletion struct {
	Identification bool `json:"identification"`
	Scoring        bool `json:"scoring"`
	Matrix         bool `json:"matrix"`
	Report         bool `json:"report"`
}

// Track computes progress statistics from the authoritative topic list.
func Track(topics []models.Topic) Progress {
	p := Progress{TotalTopics: len(topics)}
	for _, topic := range topics {
		if topic.FinancialImpactScore != nil {
			p.ScoredTopics++
		}
		if topic.IsMaterial != nil && *topic.IsMaterial {
			p.MaterialTopics++
		}
		if topic.ReportComplete() {
			p.CompletedReports++
		}
	}
	if p.TotalTopics > 0 {
		p.OverallProgress = int(math.Round(float64(p.CompletedReports) / float64(p.TotalTopics) * 100))
	}
	return p
}

// Stages derives the per-stage completion badges from progress statistics.
func Stages(p Progress) StageCompletion {
	return StageCompletion{
		Identification: p.TotalTopics > 0,
		Scoring:        p.TotalTopics > 0 && p.ScoredTopics == p.TotalTopics,
		Matrix:         p.MaterialTopics > 0,
		Report:         p.MaterialTopics > 0 && p.CompletedReports == p.MaterialTopics,
	}
}
