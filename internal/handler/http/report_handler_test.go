package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/entity"
	handler "github.com/ireporter/api/internal/handler/http"
	dto "github.com/ireporter/api/internal/handler/http/dto"
	mocks "github.com/ireporter/api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupReportRouter(h *handler.ReportHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user", user)
			c.Set("userID", user.ID)
		})
	}
	r.POST("/reports", h.CreateReport)
	r.GET("/reports", h.ListReports)
	r.GET("/reports/:id", h.GetReport)
	r.PATCH("/reports/:id", h.UpdateReport)
	r.DELETE("/reports/:id", h.DeleteReport)
	r.PATCH("/reports/status/:id", h.ChangeReportStatus)
	return r
}

func reporter() *entity.User {
	return &entity.User{ID: "mock-user-id", Role: entity.UserRoleUser, Active: true}
}

func TestCreateReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := postJSON(r, "POST", "/reports", dto.CreateReportRequest{
		Title:       "Broken street light",
		Description: "The light on 5th street has been out for a week.",
		Type:        "intervention",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestCreateReport_MissingTitle(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := postJSON(r, "POST", "/reports", map[string]string{
		"description": "no title here",
		"type":        "red-flag",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateReport_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), nil)

	w := postJSON(r, "POST", "/reports", dto.CreateReportRequest{
		Title:       "Broken street light",
		Description: "desc",
		Type:        "intervention",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListReports(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports?status=pending&sort=-createdAt", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":1`)
	assert.Equal(t, entity.ReportStatusPending, mockUsecase.LastFilter.Status)
	assert.Equal(t, "-createdAt", mockUsecase.LastFilter.SortBy)
}

func TestGetReport_Forbidden(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ForbidAccess = true
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/mock-report-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
}

func TestUpdateReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := postJSON(r, "PATCH", "/reports/mock-report-id", map[string]string{"title": "Corrected title"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestDeleteReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/reports/mock-report-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChangeReportStatus(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := postJSON(r, "PATCH", "/reports/status/mock-report-id", dto.ChangeReportStatusRequest{Status: "resolved"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"resolved"`)
	assert.Equal(t, entity.ReportStatusResolved, mockUsecase.LastStatus)
}

func TestChangeReportStatus_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailChangeStatus = true
	r := setupReportRouter(handler.NewReportHandler(mockUsecase), reporter())

	w := postJSON(r, "PATCH", "/reports/status/ghost", dto.ChangeReportStatusRequest{Status: "resolved"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no report found with that ID")
}
