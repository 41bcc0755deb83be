package repositories

import (
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestInsertTxDuplicateReferenceConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	defer tx.Rollback()

	booking := models.Booking{
		BookingID: "BK1710000000000ABCD", PNR: "X7K2P9QM",
		UserID: 42, TrainID: 1, JourneyDate: "2025-03-15", TotalAmount: 500,
	}
	err = (BookingRepo{DB: db}).InsertTx(tx, &booking)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate booking reference, got %v", err)
	}
}

func TestGetByPNRNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b WHERE b.pnr=").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = (BookingRepo{DB: db}).GetByPNR("NOPE1234")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByUserEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bookings, err := (BookingRepo{DB: db}).ListByUser(42)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", bookings)
	}
}
