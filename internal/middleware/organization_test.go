package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/materiality-api/internal/models"
)

type fakeOrgFinder struct {
	orgs map[string]models.Organization
}

func (f *fakeOrgFinder) FindByID(_ context.Context, id string) (*models.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &org, nil
}

func portfolioFinder() *fakeOrgFinder {
	consultant := "consultant-1"
	return &fakeOrgFinder{orgs: map[string]models.Organization{
		"org-1": {ID: "org-1", Name: "Client One", ConsultantID: &consultant},
		"org-9": {ID: "org-9", Name: "Someone Else's Client"},
	}}
}

func runScope(t *testing.T, claims *models.JWTClaims, target string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		c.Set(ContextUserKey, claims)
	}
	OrganizationScope(portfolioFinder())(c)
	return rec, c
}

func TestOrganizationScopeRequiresClaims(t *testing.T) {
	rec, c := runScope(t, nil, "/topics")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, c.IsAborted())
}

func TestOrganizationScopePinsOrganizationActor(t *testing.T) {
	claims := &models.JWTClaims{UserID: "user-1", Role: models.RoleOrganization, OrganizationID: "org-1"}
	rec, c := runScope(t, claims, "/topics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, "org-1", OrganizationFromContext(c))
}

func TestOrganizationScopeRejectsCrossOrganizationActor(t *testing.T) {
	claims := &models.JWTClaims{UserID: "user-1", Role: models.RoleOrganization, OrganizationID: "org-1"}
	rec, c := runScope(t, claims, "/topics?orgId=org-2")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, c.IsAborted())
	assert.Empty(t, OrganizationFromContext(c))
}

func TestOrganizationScopeConsultantPortfolioOrganization(t *testing.T) {
	claims := &models.JWTClaims{UserID: "consultant-1", Role: models.RoleConsultant}
	rec, c := runScope(t, claims, "/topics?orgId=org-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, "org-1", OrganizationFromContext(c))
}

func TestOrganizationScopeConsultantCannotActOutsidePortfolio(t *testing.T) {
	claims := &models.JWTClaims{UserID: "consultant-1", Role: models.RoleConsultant}
	rec, c := runScope(t, claims, "/topics?orgId=org-9")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, c.IsAborted())
	assert.Empty(t, OrganizationFromContext(c))
}

func TestOrganizationScopeConsultantUnknownOrganization(t *testing.T) {
	claims := &models.JWTClaims{UserID: "consultant-1", Role: models.RoleConsultant}
	rec, c := runScope(t, claims, "/topics?orgId=org-404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, c.IsAborted())
}

func TestOrganizationScopeConsultantRequiresOrgID(t *testing.T) {
	claims := &models.JWTClaims{UserID: "consultant-1", Role: models.RoleConsultant}
	rec, c := runScope(t, claims, "/topics")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, c.IsAborted())
}
