package handlers

import (
	"net/http"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/assignments — staff see their own, admins see all.
func ListAssignments(c *gin.Context) {
	staffID := int64(0)
	if middleware.GetUserRole(c) != models.RoleAdmin {
		staffID = middleware.GetUserID(c)
	}
	assignments, err := (repositories.AssignmentRepo{}).List(staffID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

type assignmentRequest struct {
	StaffID      int64  `json:"staffId" binding:"required"`
	TrainID      int64  `json:"trainId" binding:"required"`
	AssignedDate string `json:"assignedDate"`
	Shift        string `json:"shift" binding:"omitempty,oneof=morning afternoon night"`
}

// POST /api/assignments — admin assigns a staff member to a train.
func CreateAssignment(c *gin.Context) {
	var req assignmentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if _, err := (repositories.TrainRepo{}).Summary(req.TrainID); err != nil {
		RespondDomainError(c, err)
		return
	}

	date := req.AssignedDate
	if date == "" {
		date = utils.FormatDate(timeNow())
	} else if _, err := utils.ParseDate(date); err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "assignedDate", Msg: "expected YYYY-MM-DD", Err: err})
		return
	}
	shift := req.Shift
	if shift == "" {
		shift = "morning"
	}

	assignment := models.StaffAssignment{
		StaffID:      req.StaffID,
		TrainID:      req.TrainID,
		AssignedDate: date,
		Shift:        shift,
		Status:       "active",
	}
	if err := (repositories.AssignmentRepo{}).Create(&assignment); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}
