package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/models"
	"github.com/noah-isme/materiality-api/internal/service"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type scoringService interface {
	Score(ctx context.Context, organizationID, topicID string, req service.ScoreTopicRequest) (*models.Topic, error)
	UpdateReport(ctx context.Context, organizationID, topicID string, req service.ReportTopicRequest) (*models.Topic, error)
}

// ScoringHandler wires score and report-field updates to HTTP endpoints.
type ScoringHandler struct {
	service scoringService
}

// NewScoringHandler constructs the handler.
func NewScoringHandler(service scoringService) *ScoringHandler {
	return &ScoringHandler{service: service}
}

// Score godoc
// @Summary Score a topic and derive its materiality index
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param orgId query string false "Organization ID (consultants only)"
// @Param payload body service.ScoreTopicRequest true "Scoring inputs"
// @Success 200 {object} response.Envelope
// @Router /topics/{id}/score [patch]
func (h *ScoringHandler) Score(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ScoreTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	topic, err := h.service.Score(c.Request.Context(), orgID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topic)
}

// Report godoc
// @Summary Update the narrative report fields of a material topic
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param orgId query string false "Organization ID (consultants only)"
// @Param payload body service.ReportTopicRequest true "Report fields"
// @Success 200 {object} response.Envelope
// @Router /topics/{id}/report [patch]
func (h *ScoringHandler) Report(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ReportTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	topic, err := h.service.UpdateReport(c.Request.Context(), orgID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topic)
}
