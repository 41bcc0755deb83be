package models

import "time"

// Seat classes follow Indian Railways coach codes.
const (
	ClassFirstAC       = "1A"
	ClassSecondAC      = "2A"
	ClassThirdAC       = "3A"
	ClassSleeper       = "SL"
	ClassChairCar      = "CC"
	ClassSecondSitting = "2S"
)

// Train statuses. "delayed" is accepted on write but no logic
// transitions into it.
const (
	TrainActive    = "active"
	TrainCancelled = "cancelled"
	TrainDelayed   = "delayed"
)

var seatClasses = map[string]struct{}{
	ClassFirstAC:       {},
	ClassSecondAC:      {},
	ClassThirdAC:       {},
	ClassSleeper:       {},
	ClassChairCar:      {},
	ClassSecondSitting: {},
}

// ValidSeatClass reports whether c is one of the fixed coach codes.
func ValidSeatClass(c string) bool {
	_, ok := seatClasses[c]
	return ok
}

// Seat is one physical seat of a train. is_booked is true iff the seat
// is referenced by a non-cancelled booking's passenger list.
type Seat struct {
	ID         int64   `json:"-"`
	TrainID    int64   `json:"-"`
	SeatNumber string  `json:"seatNumber"`
	Class      string  `json:"class"`
	Price      float64 `json:"price"`
	IsBooked   bool    `json:"isBooked"`
}

// AvailableSeat is the public projection of an unbooked seat.
type AvailableSeat struct {
	SeatNumber string  `json:"seatNumber"`
	Class      string  `json:"class"`
	Price      float64 `json:"price"`
}

type Train struct {
	ID            int64     `json:"id"`
	TrainNumber   string    `json:"trainNumber"`
	TrainName     string    `json:"trainName"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	DepartureTime string    `json:"departureTime"`
	ArrivalTime   string    `json:"arrivalTime"`
	Duration      string    `json:"duration"`
	RunningDays   []string  `json:"runningDays"`
	Distance      float64   `json:"distance"`
	Amenities     []string  `json:"amenities"`
	Status        string    `json:"status"`
	Seats         []Seat    `json:"seats,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TrainSummary is the populated train reference embedded in booking
// responses.
type TrainSummary struct {
	ID            int64  `json:"id"`
	TrainNumber   string `json:"trainNumber"`
	TrainName     string `json:"trainName"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
}
