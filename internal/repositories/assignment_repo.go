package repositories

import (
	"database/sql"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type AssignmentRepo struct {
	DB *sql.DB
}

func (r AssignmentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const assignmentCols = `id, staff_id, train_id, DATE_FORMAT(assigned_date, '%Y-%m-%d'),
	shift, status, created_at, updated_at`

func scanAssignment(row interface{ Scan(...any) error }) (models.StaffAssignment, error) {
	var a models.StaffAssignment
	err := row.Scan(&a.ID, &a.StaffID, &a.TrainID, &a.AssignedDate,
		&a.Shift, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r AssignmentRepo) Create(a *models.StaffAssignment) error {
	res, err := r.db().Exec(`
		INSERT INTO staff_assignments (staff_id, train_id, assigned_date, shift, status)
		VALUES (?,?,?,?,?)`,
		a.StaffID, a.TrainID, a.AssignedDate, a.Shift, a.Status)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	a.ID = id
	return nil
}

// List returns all assignments, or one staff member's when staffID > 0.
func (r AssignmentRepo) List(staffID int64) ([]models.StaffAssignment, error) {
	query := `SELECT ` + assignmentCols + ` FROM staff_assignments`
	args := []any{}
	if staffID > 0 {
		query += ` WHERE staff_id=?`
		args = append(args, staffID)
	}
	query += ` ORDER BY assigned_date DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.StaffAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AssignmentRepo) CountActiveByStaff(staffID int64) (int, error) {
	var n int
	if err := r.db().QueryRow(`
		SELECT COUNT(*) FROM staff_assignments
		WHERE staff_id=? AND status='active'`, staffID).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
