package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable e-ticket PDF for a booking.
type TicketService struct {
	BookingRepo repositories.BookingRepo
	TrainRepo   repositories.TrainRepo
	DB          *sql.DB
	RequestID   string
	// Loader overrides data loading in tests.
	Loader func(int64) (models.Booking, error)
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GenerateETicket renders the e-ticket for the booking. The caller is
// responsible for the owner-or-staff authorization check.
func (s TicketService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("pnr=%s", booking.PNR))
	return buildETicketPDF(booking)
}

func (s TicketService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	bookings := s.BookingRepo
	if bookings.DB == nil {
		bookings = repositories.BookingRepo{DB: s.db()}
	}
	booking, err := bookings.GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	trains := s.TrainRepo
	if trains.DB == nil {
		trains = repositories.TrainRepo{DB: s.db()}
	}
	summary, err := trains.Summary(booking.TrainID)
	if err != nil {
		if domain.IsNotFound(err) {
			// Train deleted since booking; render what we have.
			return booking, nil
		}
		return models.Booking{}, err
	}
	booking.Train = &summary
	return booking, nil
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	trainName, route, depArr := "-", "-", "-"
	if b.Train != nil {
		trainName = fmt.Sprintf("%s (%s)", b.Train.TrainName, b.Train.TrainNumber)
		route = fmt.Sprintf("%s -> %s", b.Train.Source, b.Train.Destination)
		depArr = fmt.Sprintf("%s - %s", b.Train.DepartureTime, b.Train.ArrivalTime)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR          : %s", b.PNR),
		fmt.Sprintf("Booking Ref  : %s", b.BookingID),
		fmt.Sprintf("Train        : %s", trainName),
		fmt.Sprintf("Route        : %s", route),
		fmt.Sprintf("Dep/Arr      : %s", depArr),
		fmt.Sprintf("Journey Date : %s", b.JourneyDate),
		fmt.Sprintf("Status       : %s", b.BookingStatus),
		fmt.Sprintf("Total Fare   : %s", utils.FormatMoney(b.TotalAmount)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s  (%d, %s)  Seat %s  Class %s",
			i+1, p.Name, p.Age, p.Gender, p.SeatNumber, p.SeatClass))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid photo ID for every passenger. Present this ticket at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.PNR))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "ticket"
	}
	return b.String()
}
