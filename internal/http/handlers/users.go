package handlers

import (
	"net/http"

	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

// rootAdminEmail is the fixed platform administrator; its role can
// never be reassigned.
const rootAdminEmail = "admin@gmail.com"

// GET /api/users — admin only.
func ListUsers(c *gin.Context) {
	users, err := (repositories.UserRepo{}).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type profileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2"`
	Phone *string `json:"phone"`
}

// PUT /api/users/profile — the caller updates their own name/phone.
func UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := (repositories.UserRepo{}).UpdateProfile(middleware.GetUserID(c), req.Name, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type roleRequest struct {
	Role string `json:"role" binding:"required,oneof=passenger staff"`
}

// PUT /api/users/:id/role — admin only. Only passenger and staff can
// be assigned; nobody is ever promoted to admin.
func UpdateUserRole(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req roleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepo{}
	target, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if target.Email == rootAdminEmail || target.Role == models.RoleAdmin {
		RespondError(c, http.StatusForbidden, "Admin role cannot be modified", nil)
		return
	}

	user, err := repo.UpdateRole(id, req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/:id/deactivate — admin only.
func DeactivateUser(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	user, err := (repositories.UserRepo{}).Deactivate(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully", "user": user})
}
