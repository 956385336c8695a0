package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/middleware"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type assessmentService interface {
	Overview(ctx context.Context, organizationID string) (*dto.OverviewResponse, bool, error)
}

// AssessmentHandler serves the aggregate workflow view.
type AssessmentHandler struct {
	service assessmentService
}

// NewAssessmentHandler constructs the handler.
func NewAssessmentHandler(service assessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Overview godoc
// @Summary Assessment progress and stage completion
// @Tags Assessment
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Success 200 {object} response.Envelope
// @Router /assessment/overview [get]
func (h *AssessmentHandler) Overview(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	overview, cacheHit, err := h.service.Overview(c.Request.Context(), orgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, overview, middleware.ExtractMeta(c))
}
