package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

type BookingLogRepository struct {
	DB *sql.DB
}

func (r BookingLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListEntries returns the whole booking log, oldest first. One row per group
// transition; the accounts engine folds over this snapshot.
func (r BookingLogRepository) ListEntries() ([]models.BookedLogEntry, error) {
	dbh := r.db()
	if dbh == nil {
		return nil, fmt.Errorf("db unavailable")
	}

	rows, err := dbh.Query(`
		SELECT id, group_id, agent_id, profit_paise, split_json,
		       DATE_FORMAT(date_of_journey, '%Y-%m-%d'),
		       DATE_FORMAT(booked_at, '%Y-%m-%d %H:%i:%s')
		FROM booking_log
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.BookedLogEntry{}
	for rows.Next() {
		var (
			e         models.BookedLogEntry
			profit    int64
			splitJSON string
		)
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Agent, &profit, &splitJSON, &e.DateOfJourney, &e.BookedAt); err != nil {
			return nil, err
		}
		e.Profit = domain.Paise(profit)
		e.Split = map[string]int64{}
		if splitJSON != "" {
			_ = json.Unmarshal([]byte(splitJSON), &e.Split)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
