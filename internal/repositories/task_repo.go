package repositories

import (
	"database/sql"
	"time"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type TaskRepo struct {
	DB *sql.DB
}

func (r TaskRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const taskCols = `id, staff_id, title, description, type, priority, status,
	due_date, completed_at, location, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var desc sql.NullString
	var due, done sql.NullTime
	if err := row.Scan(&t.ID, &t.StaffID, &t.Title, &desc, &t.Type, &t.Priority,
		&t.Status, &due, &done, &t.Location, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return models.Task{}, err
	}
	t.Description = desc.String
	if due.Valid {
		t.DueDate = &due.Time
	}
	if done.Valid {
		t.CompletedAt = &done.Time
	}
	return t, nil
}

func (r TaskRepo) Create(t *models.Task) error {
	res, err := r.db().Exec(`
		INSERT INTO tasks (staff_id, title, description, type, priority, status, due_date, location)
		VALUES (?,?,?,?,?,?,?,?)`,
		t.StaffID, t.Title, t.Description, t.Type, t.Priority, t.Status, t.DueDate, t.Location)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	t.ID = id
	return nil
}

func (r TaskRepo) GetByID(id int64) (models.Task, error) {
	t, err := scanTask(r.db().QueryRow(`SELECT `+taskCols+` FROM tasks WHERE id=? LIMIT 1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, domain.NotFoundError{Resource: "Task"}
		}
		return models.Task{}, domain.InternalError{Err: err}
	}
	return t, nil
}

// List returns all tasks, or one staff member's tasks when staffID > 0.
func (r TaskRepo) List(staffID int64) ([]models.Task, error) {
	query := `SELECT ` + taskCols + ` FROM tasks`
	args := []any{}
	if staffID > 0 {
		query += ` WHERE staff_id=?`
		args = append(args, staffID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateStatus transitions a task; completing stamps completed_at.
func (r TaskRepo) UpdateStatus(id int64, status string, completedAt *time.Time) (models.Task, error) {
	if _, err := r.db().Exec(
		`UPDATE tasks SET status=?, completed_at=? WHERE id=?`,
		status, completedAt, id); err != nil {
		return models.Task{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r TaskRepo) CountDueToday(staffID int64, today string) (int, error) {
	var n int
	if err := r.db().QueryRow(`
		SELECT COUNT(*) FROM tasks
		WHERE staff_id=? AND DATE(due_date)=?`, staffID, today).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r TaskRepo) CountByType(staffID int64, taskType string) (int, error) {
	var n int
	if err := r.db().QueryRow(`
		SELECT COUNT(*) FROM tasks WHERE staff_id=? AND type=?`,
		staffID, taskType).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r TaskRepo) CountByStatus(staffID int64, status string) (int, error) {
	var n int
	if err := r.db().QueryRow(`
		SELECT COUNT(*) FROM tasks WHERE staff_id=? AND status=?`,
		staffID, status).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
