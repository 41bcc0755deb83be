package services

import (
	"bytes"
	"errors"
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func ticketFixture() models.Booking {
	return models.Booking{
		ID:            7,
		BookingID:     "BK1710000000000ABCD",
		PNR:           "X7K2P9QM",
		UserID:        42,
		TrainID:       1,
		JourneyDate:   "2025-03-15",
		TotalAmount:   500,
		BookingStatus: models.BookingConfirmed,
		Passengers: []models.Passenger{
			{Name: "Asha", Age: 30, Gender: "female", SeatNumber: "17A", SeatClass: "SL"},
		},
		Train: &models.TrainSummary{
			ID: 1, TrainNumber: "12345", TrainName: "Delhi Mumbai Express",
			Source: "Delhi", Destination: "Mumbai",
			DepartureTime: "08:00", ArrivalTime: "20:00",
		},
	}
}

func TestTicketServiceGenerateETicket(t *testing.T) {
	svc := TicketService{Loader: func(id int64) (models.Booking, error) {
		if id != 7 {
			t.Fatalf("unexpected booking id %d", id)
		}
		return ticketFixture(), nil
	}}

	pdf, filename, err := svc.GenerateETicket(7)
	if err != nil {
		t.Fatalf("GenerateETicket error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if filename != "ETICKET_X7K2P9QM.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestTicketServiceTrainlessBooking(t *testing.T) {
	// a booking whose train was deleted still renders
	b := ticketFixture()
	b.Train = nil
	svc := TicketService{Loader: func(int64) (models.Booking, error) { return b, nil }}

	pdf, _, err := svc.GenerateETicket(7)
	if err != nil {
		t.Fatalf("GenerateETicket error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
}

func TestTicketServicePropagatesLoadError(t *testing.T) {
	svc := TicketService{Loader: func(int64) (models.Booking, error) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}}

	_, _, err := svc.GenerateETicket(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"X7K2P9QM":   "X7K2P9QM",
		"a/b\\c:d":   "a_b_c_d",
		"  spaced  ": "spaced",
		"":           "ticket",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Fatalf("safeFilenamePart(%q)=%q, want %q", in, got, want)
		}
	}
	if safeFilenamePart("..") == ".." {
		t.Fatal(errors.New("dots must not survive sanitizing"))
	}
}
