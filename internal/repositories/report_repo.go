package repositories

import (
	"database/sql"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type ReportRepo struct {
	DB *sql.DB
}

func (r ReportRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reportCols = `id, staff_id, DATE_FORMAT(report_date, '%Y-%m-%d'), type, content,
	passengers_assisted, issues_resolved, trains_monitored, delays_reported,
	status, reviewed_by, review_comments, created_at, updated_at`

func scanReport(row interface{ Scan(...any) error }) (models.Report, error) {
	var rep models.Report
	var reviewedBy sql.NullInt64
	var comments sql.NullString
	if err := row.Scan(&rep.ID, &rep.StaffID, &rep.Date, &rep.Type, &rep.Content,
		&rep.Metrics.PassengersAssisted, &rep.Metrics.IssuesResolved,
		&rep.Metrics.TrainsMonitored, &rep.Metrics.DelaysReported,
		&rep.Status, &reviewedBy, &comments, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return models.Report{}, err
	}
	if reviewedBy.Valid {
		rep.ReviewedBy = &reviewedBy.Int64
	}
	rep.ReviewComments = comments.String
	return rep, nil
}

func (r ReportRepo) Create(rep *models.Report) error {
	res, err := r.db().Exec(`
		INSERT INTO reports (staff_id, report_date, type, content,
			passengers_assisted, issues_resolved, trains_monitored, delays_reported, status)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rep.StaffID, rep.Date, rep.Type, rep.Content,
		rep.Metrics.PassengersAssisted, rep.Metrics.IssuesResolved,
		rep.Metrics.TrainsMonitored, rep.Metrics.DelaysReported, rep.Status)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	rep.ID = id
	return nil
}

func (r ReportRepo) GetByID(id int64) (models.Report, error) {
	rep, err := scanReport(r.db().QueryRow(`SELECT `+reportCols+` FROM reports WHERE id=? LIMIT 1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Report{}, domain.NotFoundError{Resource: "Report"}
		}
		return models.Report{}, domain.InternalError{Err: err}
	}
	return rep, nil
}

// List returns all reports, or one staff member's when staffID > 0.
func (r ReportRepo) List(staffID int64) ([]models.Report, error) {
	query := `SELECT ` + reportCols + ` FROM reports`
	args := []any{}
	if staffID > 0 {
		query += ` WHERE staff_id=?`
		args = append(args, staffID)
	}
	query += ` ORDER BY report_date DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// Review marks a report reviewed and records reviewer and comments.
func (r ReportRepo) Review(id, reviewerID int64, comments string) (models.Report, error) {
	if _, err := r.db().Exec(`
		UPDATE reports SET status='reviewed', reviewed_by=?, review_comments=?
		WHERE id=?`, reviewerID, comments, id); err != nil {
		return models.Report{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}
