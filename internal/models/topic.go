package models

import "time"

// TopicCategory groups topics along the ESG axes.
type TopicCategory string

const (
	CategoryEnvironmental TopicCategory = "environmental"
	CategorySocial        TopicCategory = "social"
	CategoryGovernance    TopicCategory = "governance"
)

// Valid reports whether the category is one of the known ESG buckets.
func (c TopicCategory) Valid() bool {
	switch c {
	case CategoryEnvironmental, CategorySocial, CategoryGovernance:
		return true
	}
	return false
}

// ConcernLevel is the coarse stakeholder-sentiment input.
type ConcernLevel string

const (
	ConcernLow    ConcernLevel = "low"
	ConcernMedium ConcernLevel = "medium"
	ConcernHigh   ConcernLevel = "high"
)

// Valid reports whether the concern level is a known value.
func (l ConcernLevel) Valid() bool {
	switch l {
	case ConcernLow, ConcernMedium, ConcernHigh:
		return true
	}
	return false
}

// Topic is a materiality topic record scoped to one organization.
//
// The scoring fields are pointers: a nil score means the stage has not been
// reached yet. MaterialityIndex and IsMaterial are derived and only set once
// all three scoring inputs are present.
type Topic struct {
	ID                   string        `db:"id" json:"id"`
	OrganizationID       string        `db:"organization_id" json:"organization_id"`
	Topic                string        `db:"topic" json:"topic"`
	Category             TopicCategory `db:"category" json:"category"`
	Subcategory          *string       `db:"subcategory" json:"subcategory,omitempty"`
	IsCustom             bool          `db:"is_custom" json:"is_custom"`
	FinancialImpactScore *int          `db:"financial_impact_score" json:"financial_impact_score,omitempty"`
	ImpactOnStakeholders *int          `db:"impact_on_stakeholders" json:"impact_on_stakeholders,omitempty"`
	ConcernLevel         *ConcernLevel `db:"stakeholder_concern_level" json:"stakeholder_concern_level,omitempty"`
	ScoringJustification *string       `db:"scoring_justification" json:"scoring_justification,omitempty"`
	MaterialityIndex     *float64      `db:"materiality_index" json:"materiality_index,omitempty"`
	IsMaterial           *bool         `db:"is_material" json:"is_material,omitempty"`
	WhyMaterial          *string       `db:"why_material" json:"why_material,omitempty"`
	ManagementResponse   *string       `db:"management_response" json:"management_response,omitempty"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updated_at"`
}

// Scored reports whether all three scoring inputs are present.
func (t Topic) Scored() bool {
	return t.FinancialImpactScore != nil && t.ImpactOnStakeholders != nil && t.ConcernLevel != nil
}

// ReportComplete reports whether both narrative report fields are filled.
func (t Topic) ReportComplete() bool {
	return t.WhyMaterial != nil && *t.WhyMaterial != "" &&
		t.ManagementResponse != nil && *t.ManagementResponse != ""
}

// TopicUpdate carries a partial mutation of scoring/report fields. Nil
// members are left untouched by the repository.
type TopicUpdate struct {
	FinancialImpactScore *int          `db:"financial_impact_score"`
	ImpactOnStakeholders *int          `db:"impact_on_stakeholders"`
	ConcernLevel         *ConcernLevel `db:"stakeholder_concern_level"`
	ScoringJustification *string       `db:"scoring_justification"`
	MaterialityIndex     *float64      `db:"materiality_index"`
	IsMaterial           *bool         `db:"is_material"`
	WhyMaterial          *string       `db:"why_material"`
	ManagementResponse   *string       `db:"management_response"`
}

// Empty reports whether the update carries no fields at all.
func (u TopicUpdate) Empty() bool {
	return u.FinancialImpactScore == nil && u.ImpactOnStakeholders == nil &&
		u.ConcernLevel == nil && u.ScoringJustification == nil &&
		u.MaterialityIndex == nil && u.IsMaterial == nil &&
		u.WhyMaterial == nil && u.ManagementResponse == nil
}
