package repositories

import (
	"database/sql"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingCols = `b.id, b.booking_id, b.pnr, b.user_id, b.train_id,
	DATE_FORMAT(b.journey_date, '%Y-%m-%d'), b.total_amount,
	b.payment_status, b.booking_status, b.created_at, b.updated_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.BookingID, &b.PNR, &b.UserID, &b.TrainID,
		&b.JourneyDate, &b.TotalAmount, &b.PaymentStatus, &b.BookingStatus,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// InsertTx persists the booking header and its passenger list inside
// the caller's transaction. Duplicate booking_id/pnr surface as a
// conflict rather than a generic failure.
func (r BookingRepo) InsertTx(tx *sql.Tx, b *models.Booking) error {
	res, err := tx.Exec(`
		INSERT INTO bookings (booking_id, pnr, user_id, train_id, journey_date,
			total_amount, payment_status, booking_status)
		VALUES (?,?,?,?,?,?,?,?)`,
		b.BookingID, b.PNR, b.UserID, b.TrainID, b.JourneyDate,
		b.TotalAmount, b.PaymentStatus, b.BookingStatus,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "booking", Msg: "booking reference collision", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	b.ID = id

	for i := range b.Passengers {
		p := &b.Passengers[i]
		p.BookingID = id
		if _, err := tx.Exec(`
			INSERT INTO booking_passengers (booking_id, name, age, gender, seat_number, seat_class)
			VALUES (?,?,?,?,?,?)`,
			id, p.Name, p.Age, p.Gender, p.SeatNumber, p.SeatClass,
		); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	return nil
}

func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(
		`SELECT `+bookingCols+` FROM bookings b WHERE b.id=? LIMIT 1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if b.Passengers, err = r.listPassengers(b.ID); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r BookingRepo) GetByPNR(pnr string) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(
		`SELECT `+bookingCols+` FROM bookings b WHERE b.pnr=? LIMIT 1`, pnr))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if b.Passengers, err = r.listPassengers(b.ID); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// ListByUser returns the caller's bookings, newest first, populated
// with the train summary.
func (r BookingRepo) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingCols+`,
			t.id, t.train_number, t.train_name, t.source, t.destination, t.departure_time, t.arrival_time
		FROM bookings b
		LEFT JOIN trains t ON t.id = b.train_id
		WHERE b.user_id=?
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows, true, false)
}

// ListAll returns every booking, newest first, populated with user and
// train summaries. Staff/admin only at the handler layer.
func (r BookingRepo) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT ` + bookingCols + `,
			t.id, t.train_number, t.train_name, t.source, t.destination, t.departure_time, t.arrival_time,
			u.id, u.name, u.email
		FROM bookings b
		LEFT JOIN trains t ON t.id = b.train_id
		LEFT JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return r.collect(rows, true, true)
}

func (r BookingRepo) collect(rows *sql.Rows, withTrain, withUser bool) ([]models.Booking, error) {
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		dest := []any{
			&b.ID, &b.BookingID, &b.PNR, &b.UserID, &b.TrainID,
			&b.JourneyDate, &b.TotalAmount, &b.PaymentStatus, &b.BookingStatus,
			&b.CreatedAt, &b.UpdatedAt,
		}
		var (
			tid                          sql.NullInt64
			tnum, tname, tsrc, tdst      sql.NullString
			tdep, tarr                   sql.NullString
			uid                          sql.NullInt64
			uname, uemail                sql.NullString
		)
		if withTrain {
			dest = append(dest, &tid, &tnum, &tname, &tsrc, &tdst, &tdep, &tarr)
		}
		if withUser {
			dest = append(dest, &uid, &uname, &uemail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		if withTrain && tid.Valid {
			b.Train = &models.TrainSummary{
				ID:            tid.Int64,
				TrainNumber:   tnum.String,
				TrainName:     tname.String,
				Source:        tsrc.String,
				Destination:   tdst.String,
				DepartureTime: tdep.String,
				ArrivalTime:   tarr.String,
			}
		}
		if withUser && uid.Valid {
			b.User = &models.UserSummary{ID: uid.Int64, Name: uname.String, Email: uemail.String}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	for i := range out {
		ps, err := r.listPassengers(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Passengers = ps
	}
	return out, nil
}

func (r BookingRepo) listPassengers(bookingID int64) ([]models.Passenger, error) {
	rows, err := r.db().Query(`
		SELECT id, booking_id, name, age, gender, seat_number, seat_class
		FROM booking_passengers WHERE booking_id=? ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender, &p.SeatNumber, &p.SeatClass); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkCancelledTx flips the booking status inside the caller's
// transaction. Payment status is left untouched; refunds are a manual
// follow-up.
func (r BookingRepo) MarkCancelledTx(tx *sql.Tx, id int64) error {
	if _, err := tx.Exec(`
		UPDATE bookings SET booking_status=? WHERE id=?`,
		models.BookingCancelled, id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Dashboard counters.

func (r BookingRepo) CountForJourneyDate(date string) (int, error) {
	var n int
	if err := r.db().QueryRow(
		`SELECT COUNT(*) FROM bookings WHERE journey_date=?`, date).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// RevenueForJourneyDate sums total_amount of non-cancelled bookings
// travelling on the given date.
func (r BookingRepo) RevenueForJourneyDate(date string) (float64, error) {
	var total float64
	if err := r.db().QueryRow(`
		SELECT COALESCE(SUM(total_amount), 0) FROM bookings
		WHERE journey_date=? AND booking_status <> ?`,
		date, models.BookingCancelled).Scan(&total); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return total, nil
}

func (r BookingRepo) CountByUser(userID int64) (int, error) {
	var n int
	if err := r.db().QueryRow(
		`SELECT COUNT(*) FROM bookings WHERE user_id=?`, userID).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// CountUpcomingByUser counts non-cancelled bookings whose journey date
// is today or later.
func (r BookingRepo) CountUpcomingByUser(userID int64, today string) (int, error) {
	var n int
	if err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE user_id=? AND journey_date >= ? AND booking_status <> ?`,
		userID, today, models.BookingCancelled).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
