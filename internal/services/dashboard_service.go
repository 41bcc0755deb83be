package services

import (
	"database/sql"
	"time"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"
)

type DashboardService struct {
	UserRepo       repositories.UserRepo
	TrainRepo      repositories.TrainRepo
	BookingRepo    repositories.BookingRepo
	TaskRepo       repositories.TaskRepo
	AssignmentRepo repositories.AssignmentRepo
	DB             *sql.DB
	Now            func() time.Time
}

func (s DashboardService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s DashboardService) users() repositories.UserRepo {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepo{DB: s.db()}
}

func (s DashboardService) trains() repositories.TrainRepo {
	if s.TrainRepo.DB != nil {
		return s.TrainRepo
	}
	return repositories.TrainRepo{DB: s.db()}
}

func (s DashboardService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s DashboardService) tasks() repositories.TaskRepo {
	if s.TaskRepo.DB != nil {
		return s.TaskRepo
	}
	return repositories.TaskRepo{DB: s.db()}
}

func (s DashboardService) assignments() repositories.AssignmentRepo {
	if s.AssignmentRepo.DB != nil {
		return s.AssignmentRepo
	}
	return repositories.AssignmentRepo{DB: s.db()}
}

type AdminStats struct {
	TotalUsers       int            `json:"totalUsers"`
	ActiveTrains     int            `json:"activeTrains"`
	TodayBookings    int            `json:"todayBookings"`
	Revenue          float64        `json:"revenue"`
	RegisteredTrains []models.Train `json:"registeredTrains"`
}

type PassengerStats struct {
	UpcomingTrips int `json:"upcomingTrips"`
	TotalBookings int `json:"totalBookings"`
}

type StaffStats struct {
	AssignedTrains   int `json:"assignedTrains"`
	TodayTasks       int `json:"todayTasks"`
	PassengerAssists int `json:"passengerAssists"`
	Completed        int `json:"completed"`
}

// AdminStats aggregates platform-wide counters plus today's booking
// volume and revenue (non-cancelled bookings travelling today).
func (s DashboardService) AdminStats() (AdminStats, error) {
	var out AdminStats
	var err error

	if out.TotalUsers, err = s.users().Count(); err != nil {
		return AdminStats{}, err
	}
	if out.ActiveTrains, err = s.trains().Count(); err != nil {
		return AdminStats{}, err
	}

	today := utils.FormatDate(s.now())
	if out.TodayBookings, err = s.bookings().CountForJourneyDate(today); err != nil {
		return AdminStats{}, err
	}
	if out.Revenue, err = s.bookings().RevenueForJourneyDate(today); err != nil {
		return AdminStats{}, err
	}
	if out.RegisteredTrains, err = s.trains().List("", ""); err != nil {
		return AdminStats{}, err
	}
	return out, nil
}

func (s DashboardService) PassengerStats(userID int64) (PassengerStats, error) {
	var out PassengerStats
	var err error

	today := utils.FormatDate(s.now())
	if out.UpcomingTrips, err = s.bookings().CountUpcomingByUser(userID, today); err != nil {
		return PassengerStats{}, err
	}
	if out.TotalBookings, err = s.bookings().CountByUser(userID); err != nil {
		return PassengerStats{}, err
	}
	return out, nil
}

// StaffStats backs the staff dashboard with live counters over
// assignments and tasks.
func (s DashboardService) StaffStats(staffID int64) (StaffStats, error) {
	var out StaffStats
	var err error

	if out.AssignedTrains, err = s.assignments().CountActiveByStaff(staffID); err != nil {
		return StaffStats{}, err
	}
	today := utils.FormatDate(s.now())
	if out.TodayTasks, err = s.tasks().CountDueToday(staffID, today); err != nil {
		return StaffStats{}, err
	}
	if out.PassengerAssists, err = s.tasks().CountByType(staffID, "passenger_assistance"); err != nil {
		return StaffStats{}, err
	}
	if out.Completed, err = s.tasks().CountByStatus(staffID, models.TaskCompleted); err != nil {
		return StaffStats{}, err
	}
	return out, nil
}
