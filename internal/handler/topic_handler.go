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

type topicService interface {
	List(ctx context.Context, organizationID string) ([]models.Topic, error)
	Toggle(ctx context.Context, organizationID string, req service.ToggleTopicRequest) (*service.ToggleResult, error)
	AddCustom(ctx context.Context, organizationID string, req service.AddCustomTopicRequest) (*models.Topic, error)
	RemoveCustom(ctx context.Context, organizationID, topicID string) error
}

// TopicHandler wires topic selection to HTTP endpoints.
type TopicHandler struct {
	service topicService
}

// NewTopicHandler constructs the handler.
func NewTopicHandler(service topicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// List godoc
// @Summary Selected topics for an organization
// @Tags Topics
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Success 200 {object} response.Envelope
// @Router /topics [get]
func (h *TopicHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	topics, err := h.service.List(c.Request.Context(), orgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, topics)
}

// Toggle godoc
// @Summary Select or deselect a catalog topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Param payload body service.ToggleTopicRequest true "Topic reference"
// @Success 200 {object} response.Envelope
// @Router /topics/toggle [post]
func (h *TopicHandler) Toggle(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ToggleTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	result, err := h.service.Toggle(c.Request.Context(), orgID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// AddCustom godoc
// @Summary Add a custom topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Param payload body service.AddCustomTopicRequest true "Custom topic"
// @Success 201 {object} response.Envelope
// @Router /topics/custom [post]
func (h *TopicHandler) AddCustom(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AddCustomTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	topic, err := h.service.AddCustom(c.Request.Context(), orgID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, topic)
}

// Remove godoc
// @Summary Remove a custom topic
// @Tags Topics
// @Produce json
// @Param id path string true "Topic ID"
// @Param orgId query string false "Organization ID (consultants only)"
// @Success 204
// @Router /topics/{id} [delete]
func (h *TopicHandler) Remove(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.RemoveCustom(c.Request.Context(), orgID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
