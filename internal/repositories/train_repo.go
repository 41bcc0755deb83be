package repositories

import (
	"database/sql"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

type TrainRepo struct {
	DB *sql.DB
}

func (r TrainRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const trainCols = `id, train_number, train_name, source, destination, departure_time, arrival_time,
	duration, running_days, distance, amenities, status, created_at, updated_at`

func scanTrain(row interface{ Scan(...any) error }) (models.Train, error) {
	var t models.Train
	var days, amenities string
	if err := row.Scan(
		&t.ID, &t.TrainNumber, &t.TrainName, &t.Source, &t.Destination,
		&t.DepartureTime, &t.ArrivalTime, &t.Duration, &days,
		&t.Distance, &amenities, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return models.Train{}, err
	}
	t.RunningDays = utils.SplitList(days)
	t.Amenities = utils.SplitList(amenities)
	return t, nil
}

// Create inserts the train and its seat layout in one transaction.
func (r TrainRepo) Create(t *models.Train) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO trains (train_number, train_name, source, destination, departure_time,
			arrival_time, duration, running_days, distance, amenities, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		t.TrainNumber, t.TrainName, t.Source, t.Destination, t.DepartureTime,
		t.ArrivalTime, t.Duration, utils.JoinList(t.RunningDays), t.Distance,
		utils.JoinList(t.Amenities), t.Status,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "train", Msg: "train number already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	t.ID = id

	if err := (SeatRepo{}).InsertSeatsTx(tx, id, t.Seats); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	for i := range t.Seats {
		t.Seats[i].TrainID = id
	}
	return nil
}

func (r TrainRepo) GetByID(id int64) (models.Train, error) {
	db := r.db()
	t, err := scanTrain(db.QueryRow(`SELECT `+trainCols+` FROM trains WHERE id=? LIMIT 1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Train{}, domain.NotFoundError{Resource: "Train"}
		}
		return models.Train{}, domain.InternalError{Err: err}
	}
	seats, err := SeatRepo{DB: r.DB}.ListByTrain(id)
	if err != nil {
		return models.Train{}, err
	}
	t.Seats = seats
	return t, nil
}

// List returns trains filtered by optional case-insensitive source and
// destination substrings, seat layouts included.
func (r TrainRepo) List(source, destination string) ([]models.Train, error) {
	db := r.db()

	query := `SELECT ` + trainCols + ` FROM trains`
	where := []string{}
	args := []any{}
	if s := strings.TrimSpace(source); s != "" {
		where = append(where, "LOWER(source) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if d := strings.TrimSpace(destination); d != "" {
		where = append(where, "LOWER(destination) LIKE ?")
		args = append(args, "%"+strings.ToLower(d)+"%")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	seatRepo := SeatRepo{DB: r.DB}
	for i := range out {
		seats, err := seatRepo.ListByTrain(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Seats = seats
	}
	return out, nil
}

// Update rewrites train fields and, when a seat layout is supplied,
// replaces the whole layout. Booked flags of replaced seats are reset;
// that matches the direct-admin-edit semantics of train maintenance.
func (r TrainRepo) Update(t *models.Train) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE trains SET train_number=?, train_name=?, source=?, destination=?,
			departure_time=?, arrival_time=?, duration=?, running_days=?,
			distance=?, amenities=?, status=?
		WHERE id=?`,
		t.TrainNumber, t.TrainName, t.Source, t.Destination, t.DepartureTime,
		t.ArrivalTime, t.Duration, utils.JoinList(t.RunningDays), t.Distance,
		utils.JoinList(t.Amenities), t.Status, t.ID,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "train", Msg: "train number already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update;
		// disambiguate with an existence probe.
		var exists int64
		if err := tx.QueryRow(`SELECT id FROM trains WHERE id=? LIMIT 1`, t.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "Train"}
		}
	}

	if t.Seats != nil {
		seatRepo := SeatRepo{}
		if err := seatRepo.DeleteByTrainTx(tx, t.ID); err != nil {
			return err
		}
		if err := seatRepo.InsertSeatsTx(tx, t.ID, t.Seats); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r TrainRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trains WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Train"}
	}
	return nil
}

func (r TrainRepo) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM trains`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// Summaries returns populated train references for the given ids.
func (r TrainRepo) Summary(id int64) (models.TrainSummary, error) {
	var s models.TrainSummary
	err := r.db().QueryRow(`
		SELECT id, train_number, train_name, source, destination, departure_time, arrival_time
		FROM trains WHERE id=? LIMIT 1`, id).
		Scan(&s.ID, &s.TrainNumber, &s.TrainName, &s.Source, &s.Destination, &s.DepartureTime, &s.ArrivalTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.TrainSummary{}, domain.NotFoundError{Resource: "Train"}
		}
		return models.TrainSummary{}, domain.InternalError{Err: err}
	}
	return s, nil
}
