package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/dto"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type catalogService interface {
	Grouped() []dto.CatalogGroup
}

// CatalogHandler serves the predefined topic taxonomy.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List godoc
// @Summary Predefined ESG topic catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Grouped())
}
