package dto

import (
	"github.com/noah-isme/materiality-api/internal/materiality"
	"github.com/noah-isme/materiality-api/internal/models"
)

// StageID identifies one of the four ordered assessment stages.
type StageID string

const (
	StageIdentification StageID = "identification"
	StageScoring        StageID = "scoring"
	StageMatrix         StageID = "matrix"
	StageReport         StageID = "report"
)

// StageStatus describes a workflow stage badge.
type StageStatus struct {
	ID       StageID `json:"id"`
	Label    string  `json:"label"`
	Complete bool    `json:"complete"`
}

// OverviewResponse is the aggregate workflow view for one organization.
type OverviewResponse struct {
	OrganizationID string               `json:"organization_id"`
	Progress       materiality.Progress `json:"progress"`
	Stages         []StageStatus        `json:"stages"`
}

// MatrixResponse carries plotted points, guide line positions and summary
// counts for the prioritization matrix.
type MatrixResponse struct {
	OrganizationID string              `json:"organization_id"`
	Category       string              `json:"category"`
	Size           float64             `json:"size"`
	Padding        float64             `json:"padding"`
	GuideX         float64             `json:"guide_x"`
	GuideY         float64             `json:"guide_y"`
	Points         []materiality.Point `json:"points"`
	Summary        materiality.Summary `json:"summary"`
}

// ReportEntry is one material topic in the final report.
type ReportEntry struct {
	TopicID            string               `json:"topic_id"`
	Topic              string               `json:"topic"`
	Category           models.TopicCategory `json:"category"`
	Subcategory        *string              `json:"subcategory,omitempty"`
	MaterialityIndex   float64              `json:"materiality_index"`
	Level              materiality.Level    `json:"level"`
	WhyMaterial        *string              `json:"why_material,omitempty"`
	ManagementResponse *string              `json:"management_response,omitempty"`
	Complete           bool                 `json:"complete"`
}

// FinalReportResponse is the report-stage output: every material topic with
// its narrative fields plus completion counts.
type FinalReportResponse struct {
	OrganizationID   string        `json:"organization_id"`
	MaterialTopics   []ReportEntry `json:"material_topics"`
	CompletedReports int           `json:"completed_reports"`
	TotalMaterial    int           `json:"total_material"`
}

// CatalogGroup is the taxonomy grouped per ESG category.
type CatalogGroup struct {
	Category models.TopicCategory  `json:"category"`
	Topics   []models.CatalogTopic `json:"topics"`
}
