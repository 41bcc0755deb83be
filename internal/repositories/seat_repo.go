package repositories

import (
	"database/sql"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type SeatRepo struct {
	DB *sql.DB
}

func (r SeatRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByTrain returns the full seat layout in insertion order.
func (r SeatRepo) ListByTrain(trainID int64) ([]models.Seat, error) {
	rows, err := r.db().Query(`
		SELECT id, train_id, seat_number, class, price, is_booked
		FROM train_seats WHERE train_id=? ORDER BY id ASC`, trainID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.TrainID, &s.SeatNumber, &s.Class, &s.Price, &s.IsBooked); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListAvailable projects unbooked seats to (seatNumber, class, price).
// A train with no configured seats yields an empty list, not an error.
func (r SeatRepo) ListAvailable(trainID int64) ([]models.AvailableSeat, error) {
	rows, err := r.db().Query(`
		SELECT seat_number, class, price
		FROM train_seats WHERE train_id=? AND is_booked=0 ORDER BY id ASC`, trainID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.AvailableSeat{}
	for rows.Next() {
		var s models.AvailableSeat
		if err := rows.Scan(&s.SeatNumber, &s.Class, &s.Price); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SeatRepo) InsertSeatsTx(tx *sql.Tx, trainID int64, seats []models.Seat) error {
	for _, s := range seats {
		if _, err := tx.Exec(`
			INSERT INTO train_seats (train_id, seat_number, class, price, is_booked)
			VALUES (?,?,?,?,?)`,
			trainID, s.SeatNumber, s.Class, s.Price, s.IsBooked,
		); err != nil {
			if isDuplicateKey(err) {
				return domain.ConflictError{Resource: "seat", Msg: "duplicate seat number " + s.SeatNumber, Err: err}
			}
			return domain.InternalError{Err: err}
		}
	}
	return nil
}

func (r SeatRepo) DeleteByTrainTx(tx *sql.Tx, trainID int64) error {
	if _, err := tx.Exec(`DELETE FROM train_seats WHERE train_id=?`, trainID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// BookSeatTx flips a seat to booked with a single conditional write.
// Returns false when the seat was already booked by the time the write
// landed, which is how concurrent double-allocation is ruled out.
func (r SeatRepo) BookSeatTx(tx *sql.Tx, trainID int64, seatNumber string) (bool, error) {
	res, err := tx.Exec(`
		UPDATE train_seats SET is_booked=1
		WHERE train_id=? AND seat_number=? AND is_booked=0`, trainID, seatNumber)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n == 1, nil
}

// ReleaseSeatTx flips a seat back to available. A seat that no longer
// exists (train edited since booking) is tolerated silently.
func (r SeatRepo) ReleaseSeatTx(tx *sql.Tx, trainID int64, seatNumber string) error {
	if _, err := tx.Exec(`
		UPDATE train_seats SET is_booked=0
		WHERE train_id=? AND seat_number=?`, trainID, seatNumber); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
