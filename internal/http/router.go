package api

import (
	"log"
	stdhttp "net/http"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	h "railbook/internal/http/handlers"
	"railbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	staffOrAdmin := middleware.RequireRoles(models.RoleStaff, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		trains := api.Group("/trains")
		trains.GET("", h.ListTrains)
		trains.GET("/:id", h.GetTrainByID)
		trains.GET("/:id/seats", h.GetAvailableSeats)
		trains.POST("", middleware.RequireAuth(), staffOrAdmin, h.CreateTrain)
		trains.PUT("/:id", middleware.RequireAuth(), staffOrAdmin, h.UpdateTrain)
		trains.DELETE("/:id", middleware.RequireAuth(), adminOnly, h.DeleteTrain)

		bookings := api.Group("/bookings")
		bookings.GET("/pnr/:pnr", h.GetBookingByPNR) // public PNR lookup
		authed := bookings.Group("", middleware.RequireAuth())
		authed.POST("", h.CreateBooking)
		authed.GET("/my-bookings", h.GetMyBookings)
		authed.GET("", staffOrAdmin, h.GetAllBookings)
		authed.PUT("/:id/cancel", h.CancelBooking)
		authed.GET("/:id/e-ticket", h.GetBookingETicket)

		users := api.Group("/users", middleware.RequireAuth())
		users.GET("", adminOnly, h.ListUsers)
		users.PUT("/profile", h.UpdateProfile)
		users.PUT("/:id/role", adminOnly, h.UpdateUserRole)
		users.PUT("/:id/deactivate", adminOnly, h.DeactivateUser)

		dashboard := api.Group("/dashboard", middleware.RequireAuth())
		dashboard.GET("/admin", adminOnly, h.AdminDashboard)
		dashboard.GET("/passenger", middleware.RequireRoles(models.RolePassenger), h.PassengerDashboard)
		dashboard.GET("/staff", middleware.RequireRoles(models.RoleStaff), h.StaffDashboard)

		tasks := api.Group("/tasks", middleware.RequireAuth(), staffOrAdmin)
		tasks.GET("", h.ListTasks)
		tasks.POST("", adminOnly, h.CreateTask)
		tasks.PUT("/:id/status", h.UpdateTaskStatus)

		assignments := api.Group("/assignments", middleware.RequireAuth(), staffOrAdmin)
		assignments.GET("", h.ListAssignments)
		assignments.POST("", adminOnly, h.CreateAssignment)

		reports := api.Group("/reports", middleware.RequireAuth(), staffOrAdmin)
		reports.GET("", h.ListReports)
		reports.POST("", h.CreateReport)
		reports.PUT("/:id/review", adminOnly, h.ReviewReport)
	}

	return r
}
