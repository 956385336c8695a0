package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/materiality-api/internal/middleware"
	"github.com/noah-isme/materiality-api/internal/models"
	"github.com/noah-isme/materiality-api/internal/service"
)

type fakeTopicSrv struct {
	topics    []models.Topic
	toggle    *service.ToggleResult
	lastOrgID string
}

func (f *fakeTopicSrv) List(_ context.Context, organizationID string) ([]models.Topic, error) {
	f.lastOrgID = organizationID
	return f.topics, nil
}

func (f *fakeTopicSrv) Toggle(_ context.Context, organizationID string, _ service.ToggleTopicRequest) (*service.ToggleResult, error) {
	f.lastOrgID = organizationID
	return f.toggle, nil
}

func (f *fakeTopicSrv) AddCustom(_ context.Context, organizationID string, req service.AddCustomTopicRequest) (*models.Topic, error) {
	f.lastOrgID = organizationID
	return &models.Topic{Topic: req.Topic, IsCustom: true}, nil
}

func (f *fakeTopicSrv) RemoveCustom(_ context.Context, organizationID, _ string) error {
	f.lastOrgID = organizationID
	return nil
}

func scopedContext(rec *httptest.ResponseRecorder, method, target, orgID string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	if orgID != "" {
		c.Set(middleware.ContextOrganizationKey, orgID)
	}
	return c
}

func TestTopicHandlerListRequiresScope(t *testing.T) {
	handler := NewTopicHandler(&fakeTopicSrv{})

	rec := httptest.NewRecorder()
	c := scopedContext(rec, http.MethodGet, "/topics", "")

	handler.List(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTopicHandlerListUsesScopedOrganization(t *testing.T) {
	srv := &fakeTopicSrv{}
	handler := NewTopicHandler(srv)

	rec := httptest.NewRecorder()
	c := scopedContext(rec, http.MethodGet, "/topics", "org-1")

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "org-1", srv.lastOrgID)
}

func TestTopicHandlerToggle(t *testing.T) {
	srv := &fakeTopicSrv{toggle: &service.ToggleResult{Created: true}}
	handler := NewTopicHandler(srv)

	body := `{"topic":"climate-change","category":"environmental"}`
	rec := httptest.NewRecorder()
	c := scopedContext(rec, http.MethodPost, "/topics/toggle", "org-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/topics/toggle", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Toggle(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "org-1", srv.lastOrgID)
}

func TestTopicHandlerToggleRejectsMalformedBody(t *testing.T) {
	handler := NewTopicHandler(&fakeTopicSrv{})

	rec := httptest.NewRecorder()
	c := scopedContext(rec, http.MethodPost, "/topics/toggle", "org-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/topics/toggle", strings.NewReader("{"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Toggle(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTopicHandlerRemoveUsesScopedOrganization(t *testing.T) {
	srv := &fakeTopicSrv{}
	handler := NewTopicHandler(srv)

	rec := httptest.NewRecorder()
	c := scopedContext(rec, http.MethodDelete, "/topics/topic-1", "org-1")
	c.Params = gin.Params{{Key: "id", Value: "topic-1"}}

	handler.Remove(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "org-1", srv.lastOrgID)
}
