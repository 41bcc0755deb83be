package services

import (
	"strings"
	"testing"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func sampleTrain() models.Train {
	return models.Train{
		ID:        1,
		TrainName: "Delhi Mumbai Express",
		Seats: []models.Seat{
			{TrainID: 1, SeatNumber: "17A", Class: models.ClassSleeper, Price: 500},
			{TrainID: 1, SeatNumber: "18A", Class: models.ClassSleeper, Price: 500},
			{TrainID: 1, SeatNumber: "25A", Class: models.ClassChairCar, Price: 800, IsBooked: true},
		},
	}
}

func TestCalculateFareSumsSnapshotPrices(t *testing.T) {
	quote, err := calculateFare(sampleTrain(), []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
		{Name: "Ravi", Age: 34, Gender: "male", SeatNumber: "18A"},
	})
	require.NoError(t, err)
	require.Equal(t, 1000.0, quote.Total)
	require.Equal(t, []string{"17A", "18A"}, quote.SeatNumbers)
	// class is snapshotted from the seat, not the request
	require.Equal(t, models.ClassSleeper, quote.Passengers[0].SeatClass)
}

func TestCalculateFareSeatNotFoundListsAvailable(t *testing.T) {
	_, err := calculateFare(sampleTrain(), []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "99Z"},
	})
	require.Error(t, err)
	require.True(t, domain.IsConflict(err))
	require.Contains(t, err.Error(), "Seat 99Z not found in train Delhi Mumbai Express")
	// only unbooked seats are offered as alternatives
	require.Contains(t, err.Error(), "17A")
	require.Contains(t, err.Error(), "18A")
	require.NotContains(t, err.Error(), "25A")
}

func TestCalculateFareSeatAlreadyBooked(t *testing.T) {
	_, err := calculateFare(sampleTrain(), []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "25A"},
	})
	require.True(t, domain.IsConflict(err))
	require.Equal(t, "Seat 25A is already booked", err.Error())
}

func TestCalculateFareInvalidPrice(t *testing.T) {
	train := sampleTrain()
	train.Seats[0].Price = 0

	_, err := calculateFare(train, []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
	})
	require.True(t, domain.IsConflict(err))
	require.Equal(t, "Invalid price for seat 17A", err.Error())
}

func TestCalculateFareIsAllOrNothing(t *testing.T) {
	// failure on the second passenger must not report a partial quote
	_, err := calculateFare(sampleTrain(), []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
		{Name: "Ravi", Age: 34, Gender: "male", SeatNumber: "25A"},
	})
	require.True(t, domain.IsConflict(err))
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	svc := BookingService{
		BookingRepo: repositories.BookingRepo{DB: db},
		SeatRepo:    repositories.SeatRepo{DB: db},
		TrainRepo:   repositories.TrainRepo{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func expectTrainLookup(mock sqlmock.Sqlmock, booked bool) {
	now := time.Now()
	mock.ExpectQuery("FROM trains WHERE id=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "train_number", "train_name", "source", "destination",
			"departure_time", "arrival_time", "duration", "running_days",
			"distance", "amenities", "status", "created_at", "updated_at",
		}).AddRow(1, "12345", "Delhi Mumbai Express", "Delhi", "Mumbai",
			"08:00", "20:00", "12h 0m", "Monday,Tuesday", 1447.0, "WiFi,AC", "active", now, now))
	mock.ExpectQuery("FROM train_seats WHERE train_id=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "train_id", "seat_number", "class", "price", "is_booked",
		}).AddRow(17, 1, "17A", "SL", 500.0, booked))
}

func TestBookingCreateCommitsBookingAndSeatFlip(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectTrainLookup(mock, false)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO booking_passengers").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE train_seats SET is_booked=1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.Create(42, 1, "2025-03-15", []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
	})
	require.NoError(t, err)
	require.Equal(t, 500.0, booking.TotalAmount)
	require.Equal(t, models.BookingConfirmed, booking.BookingStatus)
	require.Equal(t, models.PaymentPending, booking.PaymentStatus)
	require.NotEmpty(t, booking.PNR)
	require.True(t, strings.HasPrefix(booking.BookingID, "BK"))
	require.NotNil(t, booking.Train)
	require.Equal(t, "Delhi Mumbai Express", booking.Train.TrainName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateAbortsWhenSeatFlipRaces(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectTrainLookup(mock, false)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO booking_passengers").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// conditional write finds the seat taken: zero rows affected
	mock.ExpectExec("UPDATE train_seats SET is_booked=1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Create(42, 1, "2025-03-15", []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
	})
	require.True(t, domain.IsConflict(err))
	require.Equal(t, "Seat 17A is already booked", err.Error())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateRejectsBookedSeatBeforeAnyWrite(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectTrainLookup(mock, true)

	_, err := svc.Create(42, 1, "2025-03-15", []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
	})
	require.True(t, domain.IsConflict(err))
	require.Equal(t, "Seat 17A is already booked", err.Error())

	// no booking insert and no seat flip were attempted
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateValidatesInput(t *testing.T) {
	svc, _, closeDB := newBookingService(t)
	defer closeDB()

	_, err := svc.Create(42, 1, "2025-03-15", nil)
	require.True(t, domain.IsValidation(err))

	_, err = svc.Create(42, 1, "not-a-date", []models.PassengerInput{
		{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A"},
	})
	require.True(t, domain.IsValidation(err))
}

func expectBookingLookup(mock sqlmock.Sqlmock, status string) {
	now := time.Now()
	mock.ExpectQuery("FROM bookings b WHERE b.id=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "pnr", "user_id", "train_id", "journey_date",
			"total_amount", "payment_status", "booking_status", "created_at", "updated_at",
		}).AddRow(7, "BK1710000000000ABCD", "X7K2P9QM", 42, 1, "2025-03-15",
			500.0, models.PaymentPending, status, now, now))
	mock.ExpectQuery("FROM booking_passengers WHERE booking_id=").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "name", "age", "gender", "seat_number", "seat_class",
		}).AddRow(1, 7, "Asha", 30, "female", "17A", "SL"))
}

func TestBookingCancelReleasesSeats(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectBookingLookup(mock, models.BookingConfirmed)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE train_seats SET is_booked=0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.Cancel(7, 42, models.RolePassenger)
	require.NoError(t, err)
	require.Equal(t, models.BookingCancelled, booking.BookingStatus)
	// refunds stay a manual follow-up
	require.Equal(t, models.PaymentPending, booking.PaymentStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelByStaffForOtherUser(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectBookingLookup(mock, models.BookingConfirmed)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE train_seats SET is_booked=0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.Cancel(7, 99, models.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelUnauthorized(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectBookingLookup(mock, models.BookingConfirmed)

	_, err := svc.Cancel(7, 99, models.RolePassenger)
	require.True(t, domain.IsUnauthorized(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelTwiceConflicts(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	expectBookingLookup(mock, models.BookingCancelled)

	_, err := svc.Cancel(7, 42, models.RolePassenger)
	require.True(t, domain.IsConflict(err))
	require.Equal(t, "Booking is already cancelled", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableSeatNumbersSkipsBooked(t *testing.T) {
	nums := availableSeatNumbers(sampleTrain().Seats)
	if strings.Join(nums, ",") != "17A,18A" {
		t.Fatalf("unexpected available seats: %v", nums)
	}
}
