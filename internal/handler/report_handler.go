package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/dto"
	"github.com/noah-isme/materiality-api/internal/service"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type reportService interface {
	Final(ctx context.Context, organizationID string) (*dto.FinalReportResponse, error)
	Export(ctx context.Context, organizationID, format string) (*service.ExportResult, error)
}

// ReportHandler serves the final materiality report.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Final godoc
// @Summary Final report over material topics
// @Tags Report
// @Produce json
// @Param orgId query string false "Organization ID (consultants only)"
// @Success 200 {object} response.Envelope
// @Router /report [get]
func (h *ReportHandler) Final(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.Final(c.Request.Context(), orgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Export godoc
// @Summary Download the final report
// @Tags Report
// @Produce text/csv
// @Produce application/pdf
// @Param orgId query string false "Organization ID (consultants only)"
// @Param format query string false "Export format: csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /report/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	orgID, err := resolveOrganizationID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Export(c.Request.Context(), orgID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
