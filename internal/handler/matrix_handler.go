package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/dto"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type matrixService interface {
	Build(ctx context.Context, organizationID, categoryFilter string) (*dto.MatrixResponse, error)
}

// MatrixHandler serves the prioritization matrix.
type MatrixHandler struct {
	service matrixService
}

// NewMatrixHandler constructs the handler.
func NewMatrixHandler(service matrixService) *MatrixHandler {
	return &MatrixHandler{service: service}
}

// Get godoc
// @Summary Materiality prioritization matrix
// @Tags Matrix
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Param category query string false "Category filter: all, environmental, social, governance"
// @Success 200 {object} response.Envelope
// @Router /matrix [get]
func (h *MatrixHandler) Get(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	matrix, err := h.service.Build(c.Request.Context(), orgID, strings.TrimSpace(c.Query("category")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matrix)
}
