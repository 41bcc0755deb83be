package handlers

import (
	"net/http"
	"strings"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

type seatInput struct {
	SeatNumber string  `json:"seatNumber" binding:"required"`
	Class      string  `json:"class" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	IsBooked   bool    `json:"isBooked"`
}

type trainRequest struct {
	TrainNumber   string      `json:"trainNumber" binding:"required"`
	TrainName     string      `json:"trainName" binding:"required"`
	Source        string      `json:"source" binding:"required"`
	Destination   string      `json:"destination" binding:"required"`
	DepartureTime string      `json:"departureTime"`
	ArrivalTime   string      `json:"arrivalTime"`
	Duration      string      `json:"duration"`
	RunningDays   []string    `json:"runningDays"`
	Distance      float64     `json:"distance"`
	Amenities     []string    `json:"amenities"`
	Status        string      `json:"status"`
	Seats         []seatInput `json:"seats"`
}

func (req trainRequest) toModel() (models.Train, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.TrainActive
	}
	t := models.Train{
		TrainNumber:   strings.TrimSpace(req.TrainNumber),
		TrainName:     strings.TrimSpace(req.TrainName),
		Source:        strings.TrimSpace(req.Source),
		Destination:   strings.TrimSpace(req.Destination),
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Duration:      req.Duration,
		RunningDays:   req.RunningDays,
		Distance:      req.Distance,
		Amenities:     req.Amenities,
		Status:        status,
	}
	if req.Seats != nil {
		t.Seats = make([]models.Seat, 0, len(req.Seats))
		for _, s := range req.Seats {
			if !models.ValidSeatClass(s.Class) {
				return models.Train{}, domain.ValidationError{Field: "seats", Msg: "invalid seat class " + s.Class}
			}
			t.Seats = append(t.Seats, models.Seat{
				SeatNumber: strings.TrimSpace(s.SeatNumber),
				Class:      s.Class,
				Price:      s.Price,
				IsBooked:   s.IsBooked,
			})
		}
	}
	return t, nil
}

// GET /api/trains
func ListTrains(c *gin.Context) {
	trains, err := (repositories.TrainRepo{}).List(c.Query("source"), c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trains)
}

// GET /api/trains/:id
func GetTrainByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	train, err := (repositories.TrainRepo{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}

// GET /api/trains/:id/seats — available seats only, projected to
// (seatNumber, class, price). A train without configured seats yields
// an empty list.
func GetAvailableSeats(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if _, err := (repositories.TrainRepo{}).Summary(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	seats, err := (repositories.SeatRepo{}).ListAvailable(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSeats": seats})
}

// POST /api/trains — staff/admin only.
func CreateTrain(c *gin.Context) {
	var req trainRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	train, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := (repositories.TrainRepo{}).Create(&train); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, train)
}

// PUT /api/trains/:id — staff/admin only. A supplied seat list
// replaces the whole layout.
func UpdateTrain(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req trainRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	train, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	train.ID = id

	repo := repositories.TrainRepo{}
	if err := repo.Update(&train); err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/trains/:id — admin only.
func DeleteTrain(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.TrainRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Train deleted successfully"})
}
