package repositories

import (
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestBookSeatTxReportsLostRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE train_seats SET is_booked=1").
		WithArgs(int64(1), "17A").
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	defer tx.Rollback()

	flipped, err := (SeatRepo{DB: db}).BookSeatTx(tx, 1, "17A")
	if err != nil {
		t.Fatalf("BookSeatTx error: %v", err)
	}
	if flipped {
		t.Fatal("expected flipped=false when no row was updated")
	}
}

func TestBookSeatTxFlipsFreeSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE train_seats SET is_booked=1").
		WithArgs(int64(1), "17A").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	defer tx.Rollback()

	flipped, err := (SeatRepo{DB: db}).BookSeatTx(tx, 1, "17A")
	if err != nil {
		t.Fatalf("BookSeatTx error: %v", err)
	}
	if !flipped {
		t.Fatal("expected flipped=true for a free seat")
	}
}

func TestListAvailableEmptyTrain(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM train_seats WHERE train_id=. AND is_booked=0").
		WillReturnRows(sqlmock.NewRows([]string{"seat_number", "class", "price"}))

	seats, err := (SeatRepo{DB: db}).ListAvailable(1)
	if err != nil {
		t.Fatalf("ListAvailable error: %v", err)
	}
	if seats == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(seats) != 0 {
		t.Fatalf("expected no seats, got %d", len(seats))
	}
}

func TestInsertSeatsTxDuplicateSeatNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO train_seats").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-17A'"})

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	defer tx.Rollback()

	err = (SeatRepo{DB: db}).InsertSeatsTx(tx, 1, []models.Seat{
		{SeatNumber: "17A", Class: "SL", Price: 500},
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate seat, got %v", err)
	}
}
