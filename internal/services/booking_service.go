package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"
)

// BookingService owns the seat inventory and booking consistency
// logic: fare calculation, seat allocation and cancellation.
type BookingService struct {
	BookingRepo repositories.BookingRepo
	SeatRepo    repositories.SeatRepo
	TrainRepo   repositories.TrainRepo
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s BookingService) seats() repositories.SeatRepo {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepo{DB: s.db()}
}

func (s BookingService) trains() repositories.TrainRepo {
	if s.TrainRepo.DB != nil {
		return s.TrainRepo
	}
	return repositories.TrainRepo{DB: s.db()}
}

// fareQuote is the outcome of validating a passenger list against a
// seat snapshot: the total to charge and the seats to flip.
type fareQuote struct {
	Total       float64
	SeatNumbers []string
	Passengers  []models.Passenger
}

// calculateFare validates every requested seat against the train's
// current seat list and sums the prices. It validates the whole list
// before anything is committed, so a failure on passenger N can never
// partially book passengers 1..N-1. Seat class and price are
// snapshotted from the seat, not taken from the client.
func calculateFare(train models.Train, inputs []models.PassengerInput) (fareQuote, error) {
	var q fareQuote
	for _, in := range inputs {
		seatNumber := strings.TrimSpace(in.SeatNumber)
		seat, ok := findSeat(train.Seats, seatNumber)
		if !ok {
			return fareQuote{}, domain.ConflictError{Msg: fmt.Sprintf(
				"Seat %s not found in train %s. Available seats: %s",
				seatNumber, train.TrainName, strings.Join(availableSeatNumbers(train.Seats), ", "))}
		}
		if seat.IsBooked {
			return fareQuote{}, domain.ConflictError{Msg: fmt.Sprintf("Seat %s is already booked", seatNumber)}
		}
		if seat.Price <= 0 {
			return fareQuote{}, domain.ConflictError{Msg: fmt.Sprintf("Invalid price for seat %s", seatNumber)}
		}
		q.Total += seat.Price
		q.SeatNumbers = append(q.SeatNumbers, seat.SeatNumber)
		q.Passengers = append(q.Passengers, models.Passenger{
			Name:       strings.TrimSpace(in.Name),
			Age:        in.Age,
			Gender:     in.Gender,
			SeatNumber: seat.SeatNumber,
			SeatClass:  seat.Class,
		})
	}
	return q, nil
}

func findSeat(seats []models.Seat, seatNumber string) (models.Seat, bool) {
	for _, s := range seats {
		if s.SeatNumber == seatNumber {
			return s, true
		}
	}
	return models.Seat{}, false
}

func availableSeatNumbers(seats []models.Seat) []string {
	out := []string{}
	for _, s := range seats {
		if !s.IsBooked {
			out = append(out, s.SeatNumber)
		}
	}
	return out
}

// Create books the requested seats for a confirmed booking. The
// booking insert, passenger inserts and seat flips run in one
// transaction, and every seat flip is a conditional book-if-unbooked
// write: a concurrent booking that raced us on any seat aborts the
// whole booking instead of double-allocating it.
func (s BookingService) Create(userID, trainID int64, journeyDate string, inputs []models.PassengerInput) (models.Booking, error) {
	if len(inputs) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "At least one passenger is required"}
	}
	if _, err := utils.ParseDate(journeyDate); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "journeyDate", Msg: "Valid journey date is required", Err: err}
	}

	train, err := s.trains().GetByID(trainID)
	if err != nil {
		return models.Booking{}, err
	}
	if len(train.Seats) == 0 {
		return models.Booking{}, domain.ValidationError{Msg: "No seats available for this train. Please contact administrator."}
	}

	quote, err := calculateFare(train, inputs)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		BookingID:     utils.GenerateBookingID(),
		PNR:           utils.GeneratePNR(),
		UserID:        userID,
		TrainID:       trainID,
		JourneyDate:   journeyDate,
		TotalAmount:   quote.Total,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingConfirmed,
		Passengers:    quote.Passengers,
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if err := s.bookings().InsertTx(tx, &booking); err != nil {
		return models.Booking{}, err
	}
	for _, seatNumber := range quote.SeatNumbers {
		flipped, err := s.seats().BookSeatTx(tx, trainID, seatNumber)
		if err != nil {
			return models.Booking{}, err
		}
		if !flipped {
			// Lost the race after the snapshot was read.
			return models.Booking{}, domain.ConflictError{Msg: fmt.Sprintf("Seat %s is already booked", seatNumber)}
		}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	booking.Train = &models.TrainSummary{
		ID:          train.ID,
		TrainNumber: train.TrainNumber,
		TrainName:   train.TrainName,
		Source:      train.Source,
		Destination: train.Destination,
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("pnr=%s train_id=%d seats=%d total=%s",
			booking.PNR, trainID, len(quote.SeatNumbers), utils.FormatMoney(quote.Total)))

	return booking, nil
}

// Cancel transitions a confirmed booking to cancelled and releases its
// seats. Requester must own the booking or hold staff/admin privilege.
// Seats that no longer exist on the train are tolerated. Payment
// status is not transitioned to refunded; that is a manual follow-up.
func (s BookingService) Cancel(bookingID, requesterID int64, requesterRole string) (models.Booking, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if !domain.OwnerOrRoles(booking.UserID, requesterID, requesterRole, models.RoleStaff, models.RoleAdmin) {
		return models.Booking{}, domain.UnauthorizedError{Msg: "Not authorized"}
	}
	if booking.BookingStatus == models.BookingCancelled {
		return models.Booking{}, domain.ConflictError{Msg: "Booking is already cancelled"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	for _, p := range booking.Passengers {
		if err := s.seats().ReleaseSeatTx(tx, booking.TrainID, p.SeatNumber); err != nil {
			return models.Booking{}, err
		}
	}
	if err := s.bookings().MarkCancelledTx(tx, booking.ID); err != nil {
		return models.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	booking.BookingStatus = models.BookingCancelled

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("pnr=%s seats_released=%d", booking.PNR, len(booking.Passengers)))

	return booking, nil
}
