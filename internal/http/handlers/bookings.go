package handlers

import (
	"net/http"
	"strings"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	TrainID     int64                   `json:"trainId" binding:"required"`
	Passengers  []models.PassengerInput `json:"passengers" binding:"required,min=1,dive"`
	JourneyDate string                  `json:"journeyDate" binding:"required"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Create(middleware.GetUserID(c), req.TrainID, req.JourneyDate, req.Passengers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/my-bookings — the caller's bookings, newest first.
func GetMyBookings(c *gin.Context) {
	bookings, err := (repositories.BookingRepo{}).ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings — staff/admin only.
func GetAllBookings(c *gin.Context) {
	bookings, err := (repositories.BookingRepo{}).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/pnr/:pnr — public lookup by PNR.
func GetBookingByPNR(c *gin.Context) {
	pnr := strings.ToUpper(strings.TrimSpace(c.Param("pnr")))
	if pnr == "" {
		RespondError(c, http.StatusBadRequest, "invalid PNR", nil)
		return
	}

	repo := repositories.BookingRepo{}
	booking, err := repo.GetByPNR(pnr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if summary, err := (repositories.TrainRepo{}).Summary(booking.TrainID); err == nil {
		booking.Train = &summary
	}
	c.JSON(http.StatusOK, booking)
}

// PUT /api/bookings/:id/cancel — owner or staff/admin.
func CancelBooking(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Cancel(id, middleware.GetUserID(c), middleware.GetUserRole(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": booking})
}

// GET /api/bookings/:id/e-ticket — owner or staff/admin; streams PDF.
func GetBookingETicket(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	booking, err := (repositories.BookingRepo{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !domain.OwnerOrRoles(booking.UserID, middleware.GetUserID(c), middleware.GetUserRole(c),
		models.RoleStaff, models.RoleAdmin) {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "Not authorized"})
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
