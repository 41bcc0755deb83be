package repositories

import (
	"database/sql"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userCols = `id, name, email, phone, password_hash, role, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepo) Create(u *models.User) error {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, is_active)
		VALUES (?,?,?,?,?,1)`,
		u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.Phone, u.PasswordHash, u.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	u.ID = id
	u.IsActive = true
	return nil
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(
		`SELECT `+userCols+` FROM users WHERE email=? LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, domain.NotFoundError{Resource: "User"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(
		`SELECT `+userCols+` FROM users WHERE id=? LIMIT 1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, domain.NotFoundError{Resource: "User"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepo) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + userCols + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateProfile applies name/phone changes; nil pointers leave the
// column untouched.
func (r UserRepo) UpdateProfile(id int64, name, phone *string) (models.User, error) {
	sets := []string{}
	args := []any{}
	if name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*name))
	}
	if phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, strings.TrimSpace(*phone))
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := r.db().Exec(`UPDATE users SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
			return models.User{}, domain.InternalError{Err: err}
		}
	}
	return r.GetByID(id)
}

func (r UserRepo) UpdateRole(id int64, role string) (models.User, error) {
	if _, err := r.db().Exec(`UPDATE users SET role=? WHERE id=?`, role, id); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r UserRepo) Deactivate(id int64) (models.User, error) {
	res, err := r.db().Exec(`UPDATE users SET is_active=0 WHERE id=?`, id)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return models.User{}, err
		}
	}
	return r.GetByID(id)
}

func (r UserRepo) Count() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
