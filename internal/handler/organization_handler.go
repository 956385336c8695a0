package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/materiality-api/internal/models"
	appErrors "github.com/noah-isme/materiality-api/pkg/errors"
	"github.com/noah-isme/materiality-api/pkg/response"
)

type organizationService interface {
	Visible(ctx context.Context, claims *models.JWTClaims) ([]models.Organization, error)
}

// OrganizationHandler lists the organizations an actor may act for.
type OrganizationHandler struct {
	service organizationService
}

// NewOrganizationHandler constructs the handler.
func NewOrganizationHandler(service organizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// List godoc
// @Summary Organizations visible to the authenticated actor
// @Tags Organizations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	orgs, err := h.service.Visible(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, orgs)
}
