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

// GET /api/tasks — staff see their own tasks, admins see all.
func ListTasks(c *gin.Context) {
	staffID := int64(0)
	if middleware.GetUserRole(c) != models.RoleAdmin {
		staffID = middleware.GetUserID(c)
	}
	tasks, err := (repositories.TaskRepo{}).List(staffID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type taskRequest struct {
	StaffID     int64  `json:"staffId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"omitempty,oneof=passenger_assistance maintenance security cleaning other"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     string `json:"dueDate"`
	Location    string `json:"location"`
}

// POST /api/tasks — admin assigns a task to a staff member.
func CreateTask(c *gin.Context) {
	var req taskRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	task := models.Task{
		StaffID:     req.StaffID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Status:      models.TaskPending,
		Location:    req.Location,
	}
	if task.Type == "" {
		task.Type = "other"
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if req.DueDate != "" {
		due, err := utils.ParseDate(req.DueDate)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "dueDate", Msg: "expected YYYY-MM-DD", Err: err})
			return
		}
		task.DueDate = &due
	}

	if err := (repositories.TaskRepo{}).Create(&task); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// PUT /api/tasks/:id/status — assignee or admin. Completing a task
// stamps completed_at.
func UpdateTaskStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req taskStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.TaskRepo{}
	task, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !domain.OwnerOrRoles(task.StaffID, middleware.GetUserID(c), middleware.GetUserRole(c), models.RoleAdmin) {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "Not authorized"})
		return
	}

	var completedAt *time.Time
	if req.Status == models.TaskCompleted {
		now := time.Now()
		completedAt = &now
	}
	updated, err := repo.UpdateStatus(id, req.Status, completedAt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
