package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/handler/http/dto"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

type ReportHandler struct {
	ReportUseCase usecasecontract.IReportUseCase
}

func NewReportHandler(uc usecasecontract.IReportUseCase) *ReportHandler {
	return &ReportHandler{ReportUseCase: uc}
}

// currentUser pulls the principal the auth middleware stored on the context.
func currentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
		return nil, false
	}
	user, ok := v.(*entity.User)
	if !ok {
		ErrorHandler(c, http.StatusInternalServerError, "invalid principal on request context")
		return nil, false
	}
	return user, true
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.ReportUseCase.CreateReport(c.Request.Context(), user, usecasecontract.CreateReportInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.ReportType(req.Type),
		Images:      req.Images,
		Videos:      req.Videos,
		Location:    req.Location,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{"report": dto.ToReportResponse(report)})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	report, err := h.ReportUseCase.GetReport(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"report": dto.ToReportResponse(report)})
}

// ListReports pages the caller's reports, or all reports for admins.
func (h *ReportHandler) ListReports(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := contract.ReportFilter{
		Status: entity.ReportStatus(c.Query("status")),
		Type:   entity.ReportType(c.Query("type")),
		SortBy: c.Query("sort"),
		Page:   page,
		Limit:  limit,
	}

	reports, total, err := h.ReportUseCase.ListReports(c.Request.Context(), user, filter)
	if err != nil {
		RespondError(c, err)
		return
	}
	ListHandler(c, http.StatusOK, len(reports), gin.H{
		"total":   total,
		"reports": dto.ToReportResponses(reports),
	})
}

func (h *ReportHandler) UpdateReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecasecontract.UpdateReportInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Videos:      req.Videos,
		Location:    req.Location,
	}
	if req.Type != nil {
		t := entity.ReportType(*req.Type)
		input.Type = &t
	}

	report, err := h.ReportUseCase.UpdateReport(c.Request.Context(), user, c.Param("id"), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"report": dto.ToReportResponse(report)})
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.ReportUseCase.DeleteReport(c.Request.Context(), user, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ChangeReportStatus is the administrative triage transition. The reporter is
// notified by email.
func (h *ReportHandler) ChangeReportStatus(c *gin.Context) {
	var req dto.ChangeReportStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.ReportUseCase.ChangeReportStatus(c.Request.Context(), c.Param("id"), entity.ReportStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"report": dto.ToReportResponse(report)})
}
