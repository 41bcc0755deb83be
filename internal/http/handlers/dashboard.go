package handlers

import (
	"net/http"

	"railbook/internal/http/middleware"
	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/admin
func AdminDashboard(c *gin.Context) {
	stats, err := services.DashboardService{}.AdminStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/passenger
func PassengerDashboard(c *gin.Context) {
	stats, err := services.DashboardService{}.PassengerStats(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/staff
func StaffDashboard(c *gin.Context) {
	stats, err := services.DashboardService{}.StaffStats(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
