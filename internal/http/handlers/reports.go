package handlers

import (
	"net/http"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// GET /api/reports — staff see their own, admins see all.
func ListReports(c *gin.Context) {
	staffID := int64(0)
	if middleware.GetUserRole(c) != models.RoleAdmin {
		staffID = middleware.GetUserID(c)
	}
	reports, err := (repositories.ReportRepo{}).List(staffID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

type reportRequest struct {
	Date    string               `json:"date"`
	Type    string               `json:"type" binding:"omitempty,oneof=daily incident maintenance passenger_feedback"`
	Content string               `json:"content" binding:"required"`
	Metrics models.ReportMetrics `json:"metrics"`
}

// POST /api/reports — staff submit a report.
func CreateReport(c *gin.Context) {
	var req reportRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	date := req.Date
	if date == "" {
		date = utils.FormatDate(timeNow())
	} else if _, err := utils.ParseDate(date); err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err})
		return
	}
	reportType := req.Type
	if reportType == "" {
		reportType = "daily"
	}

	report := models.Report{
		StaffID: middleware.GetUserID(c),
		Date:    date,
		Type:    reportType,
		Content: req.Content,
		Metrics: req.Metrics,
		Status:  "submitted",
	}
	if err := (repositories.ReportRepo{}).Create(&report); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

type reviewRequest struct {
	Comments string `json:"comments"`
}

// PUT /api/reports/:id/review — admin reviews a submitted report.
func ReviewReport(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ReportRepo{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	report, err := repo.Review(id, middleware.GetUserID(c), req.Comments)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
