package models

import "time"

// Booking statuses. "waitlisted" is a declared enum member that no
// code path produces.
const (
	BookingConfirmed  = "confirmed"
	BookingCancelled  = "cancelled"
	BookingWaitlisted = "waitlisted"
)

// Payment statuses. Only "pending" is produced; the rest are reserved
// for manual/administrative follow-up.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Passenger is snapshotted at booking time: seat class and price are
// copied from the seat, not live-linked.
type Passenger struct {
	ID         int64  `json:"-"`
	BookingID  int64  `json:"-"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seatNumber"`
	SeatClass  string `json:"seatClass"`
}

type Booking struct {
	ID            int64         `json:"id"`
	BookingID     string        `json:"bookingId"`
	PNR           string        `json:"pnr"`
	UserID        int64         `json:"userId"`
	TrainID       int64         `json:"trainId"`
	JourneyDate   string        `json:"journeyDate"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus string        `json:"paymentStatus"`
	BookingStatus string        `json:"bookingStatus"`
	Passengers    []Passenger   `json:"passengers"`
	Train         *TrainSummary `json:"train,omitempty"`
	User          *UserSummary  `json:"user,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// PassengerInput is the per-passenger payload of a booking request.
type PassengerInput struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required,gt=0"`
	Gender     string `json:"gender" binding:"required,oneof=male female other"`
	SeatNumber string `json:"seatNumber" binding:"required"`
	SeatClass  string `json:"seatClass"`
}
