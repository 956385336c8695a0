package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/materiality-api/internal/models"
)

// TopicRepository handles materiality topic persistence.
type TopicRepository struct {
	db *sqlx.DB
}

// NewTopicRepository creates a new topic repository.
func NewTopicRepository(db *sqlx.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

const topicColumns = `id, organization_id, topic, category, subcategory, is_custom,
        financial_impact_score, impact_on_stakeholders, stakeholder_concern_level,
        scoring_justification, materiality_index, is_material,
        why_material, management_response, created_at, updated_at`

// ListByOrganization returns every topic owned by the organization.
func (r *TopicRepository) ListByOrganization(ctx context.Context, organizationID string) ([]models.Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM topics WHERE organization_id = $1 ORDER BY created_at ASC`, topicColumns)
	var topics []models.Topic
	if err := r.db.SelectContext(ctx, &topics, query, organizationID); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// FindByID returns a single topic.
func (r *TopicRepository) FindByID(ctx context.Context, id string) (*models.Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM topics WHERE id = $1`, topicColumns)
	var topic models.Topic
	if err := r.db.GetContext(ctx, &topic, query, id); err != nil {
		return nil, err
	}
	return &topic, nil
}

// Create inserts a new topic record and assigns its id.
func (r *TopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if topic.ID == "" {
		topic.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	topic.CreatedAt = now
	topic.UpdatedAt = now
	const query = `INSERT INTO topics (id, organization_id, topic, category, subcategory, is_custom, created_at, updated_at)
        VALUES (:id, :organization_id, :topic, :category, :subcategory, :is_custom, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, topic); err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

// Update applies a partial mutation of scoring/report fields. Only fields
// set on the update are written; the caller supplies derived values
// (materiality index, is-material) alongside raw inputs.
func (r *TopicRepository) Update(ctx context.Context, id string, update models.TopicUpdate) error {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.FinancialImpactScore != nil {
		addSet("financial_impact_score", *update.FinancialImpactScore)
	}
	if update.ImpactOnStakeholders != nil {
		addSet("impact_on_stakeholders", *update.ImpactOnStakeholders)
	}
	if update.ConcernLevel != nil {
		addSet("stakeholder_concern_level", *update.ConcernLevel)
	}
	if update.ScoringJustification != nil {
		addSet("scoring_justification", *update.ScoringJustification)
	}
	if update.MaterialityIndex != nil {
		addSet("materiality_index", *update.MaterialityIndex)
	}
	if update.IsMaterial != nil {
		addSet("is_material", *update.IsMaterial)
	}
	if update.WhyMaterial != nil {
		addSet("why_material", *update.WhyMaterial)
	}
	if update.ManagementResponse != nil {
		addSet("management_response", *update.ManagementResponse)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE topics SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update topic: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update topic %s: no rows affected", id)
	}
	return nil
}

// Delete removes a topic record permanently.
func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("delete topic %s: no rows affected", id)
	}
	return nil
}
