package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

// EnsureSchema creates the ledger tables when missing. Idempotent; called
// once at startup so every mutation afterwards can assume the tables exist.
func EnsureSchema(dbh *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS booking_groups (
	group_id VARCHAR(64) PRIMARY KEY,
	boarding_station VARCHAR(255) NOT NULL,
	destination VARCHAR(255) NOT NULL,
	travel_class VARCHAR(20) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	date_of_journey DATE NOT NULL,
	submitted_on DATE NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'Pending',
	agent_id VARCHAR(64) NULL,
	profit_paise BIGINT NULL,
	split_json TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_doj (date_of_journey)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS booking_passengers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	group_id VARCHAR(64) NOT NULL,
	position INT NOT NULL,
	passenger_name VARCHAR(255) NOT NULL,
	age INT NOT NULL,
	gender VARCHAR(20) NOT NULL,
	UNIQUE KEY uniq_group_position (group_id, position),
	KEY idx_group (group_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS booking_log (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	group_id VARCHAR(64) NOT NULL,
	agent_id VARCHAR(64) NOT NULL,
	profit_paise BIGINT NOT NULL,
	split_json TEXT NOT NULL,
	date_of_journey DATE NOT NULL,
	booked_at DATETIME NOT NULL,
	KEY idx_log_group (group_id),
	KEY idx_log_agent (agent_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS settlements (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	agent_id VARCHAR(64) NOT NULL,
	amount_paise BIGINT NOT NULL,
	paid_on DATE NOT NULL,
	notes TEXT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_settle_agent (agent_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range ddls {
		if _, err := dbh.Exec(ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
