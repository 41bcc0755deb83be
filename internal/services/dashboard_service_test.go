package services

import (
	"testing"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T) (DashboardService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := DashboardService{
		UserRepo:       repositories.UserRepo{DB: db},
		TrainRepo:      repositories.TrainRepo{DB: db},
		BookingRepo:    repositories.BookingRepo{DB: db},
		TaskRepo:       repositories.TaskRepo{DB: db},
		AssignmentRepo: repositories.AssignmentRepo{DB: db},
		DB:             db,
		Now: func() time.Time {
			return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
		},
	}
	return svc, mock, func() { db.Close() }
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestAdminStats(t *testing.T) {
	svc, mock, closeDB := newDashboardService(t)
	defer closeDB()

	mock.ExpectQuery("FROM users").WillReturnRows(countRows(120))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM trains").WillReturnRows(countRows(8))
	mock.ExpectQuery("COUNT\\(\\*\\) FROM bookings WHERE journey_date=").
		WithArgs("2025-03-15").WillReturnRows(countRows(14))
	mock.ExpectQuery("COALESCE").
		WithArgs("2025-03-15", models.BookingCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(7250.0))
	mock.ExpectQuery("FROM trains ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	stats, err := svc.AdminStats()
	require.NoError(t, err)
	require.Equal(t, 120, stats.TotalUsers)
	require.Equal(t, 8, stats.ActiveTrains)
	require.Equal(t, 14, stats.TodayBookings)
	require.Equal(t, 7250.0, stats.Revenue)
	require.NotNil(t, stats.RegisteredTrains)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPassengerStats(t *testing.T) {
	svc, mock, closeDB := newDashboardService(t)
	defer closeDB()

	mock.ExpectQuery("journey_date >=").
		WithArgs(int64(42), "2025-03-15", models.BookingCancelled).
		WillReturnRows(countRows(2))
	mock.ExpectQuery("FROM bookings WHERE user_id=").
		WithArgs(int64(42)).WillReturnRows(countRows(9))

	stats, err := svc.PassengerStats(42)
	require.NoError(t, err)
	require.Equal(t, 2, stats.UpcomingTrips)
	require.Equal(t, 9, stats.TotalBookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffStats(t *testing.T) {
	svc, mock, closeDB := newDashboardService(t)
	defer closeDB()

	mock.ExpectQuery("FROM staff_assignments").
		WithArgs(int64(7)).WillReturnRows(countRows(3))
	mock.ExpectQuery("DATE\\(due_date\\)").
		WithArgs(int64(7), "2025-03-15").WillReturnRows(countRows(4))
	mock.ExpectQuery("AND type=").
		WithArgs(int64(7), "passenger_assistance").WillReturnRows(countRows(5))
	mock.ExpectQuery("AND status=").
		WithArgs(int64(7), models.TaskCompleted).WillReturnRows(countRows(6))

	stats, err := svc.StaffStats(7)
	require.NoError(t, err)
	require.Equal(t, 3, stats.AssignedTrains)
	require.Equal(t, 4, stats.TodayTasks)
	require.Equal(t, 5, stats.PassengerAssists)
	require.Equal(t, 6, stats.Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}
