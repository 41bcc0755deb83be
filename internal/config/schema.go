package config

import "database/sql"

// EnsureSchema creates all tables when they do not exist yet.
// DDL is idempotent so it is safe to run on every start.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'passenger',
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS trains (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	train_number VARCHAR(20) NOT NULL,
	train_name VARCHAR(255) NOT NULL,
	source VARCHAR(255) NOT NULL,
	destination VARCHAR(255) NOT NULL,
	departure_time VARCHAR(10) NOT NULL,
	arrival_time VARCHAR(10) NOT NULL,
	duration VARCHAR(20) NOT NULL DEFAULT '',
	running_days VARCHAR(255) NOT NULL DEFAULT '',
	distance DOUBLE NOT NULL DEFAULT 0,
	amenities VARCHAR(255) NOT NULL DEFAULT '',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_trains_number (train_number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS train_seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	train_id BIGINT NOT NULL,
	seat_number VARCHAR(20) NOT NULL,
	class VARCHAR(5) NOT NULL,
	price DOUBLE NOT NULL,
	is_booked TINYINT(1) NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_train_seat (train_id, seat_number),
	KEY idx_seats_train (train_id),
	CONSTRAINT fk_seats_train FOREIGN KEY (train_id) REFERENCES trains(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id VARCHAR(40) NOT NULL,
	pnr VARCHAR(10) NOT NULL,
	user_id BIGINT NOT NULL,
	train_id BIGINT NOT NULL,
	journey_date DATE NOT NULL,
	total_amount DOUBLE NOT NULL,
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	booking_status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking_id (booking_id),
	UNIQUE KEY uniq_booking_pnr (pnr),
	KEY idx_bookings_user (user_id),
	KEY idx_bookings_train (train_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS booking_passengers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	age INT NOT NULL,
	gender VARCHAR(10) NOT NULL,
	seat_number VARCHAR(20) NOT NULL,
	seat_class VARCHAR(5) NOT NULL,
	KEY idx_passengers_booking (booking_id),
	CONSTRAINT fk_passengers_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS tasks (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	staff_id BIGINT NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	type VARCHAR(30) NOT NULL DEFAULT 'other',
	priority VARCHAR(10) NOT NULL DEFAULT 'medium',
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	due_date DATETIME NULL,
	completed_at DATETIME NULL,
	location VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_tasks_staff (staff_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS staff_assignments (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	staff_id BIGINT NOT NULL,
	train_id BIGINT NOT NULL,
	assigned_date DATE NOT NULL,
	shift VARCHAR(20) NOT NULL DEFAULT 'morning',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_assignments_staff (staff_id),
	KEY idx_assignments_train (train_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		`CREATE TABLE IF NOT EXISTS reports (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	staff_id BIGINT NOT NULL,
	report_date DATE NOT NULL,
	type VARCHAR(30) NOT NULL DEFAULT 'daily',
	content TEXT NOT NULL,
	passengers_assisted INT NOT NULL DEFAULT 0,
	issues_resolved INT NOT NULL DEFAULT 0,
	trains_monitored INT NOT NULL DEFAULT 0,
	delays_reported INT NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'draft',
	reviewed_by BIGINT NULL,
	review_comments TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_reports_staff (staff_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
