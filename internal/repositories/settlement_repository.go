package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

type SettlementRepository struct {
	DB *sql.DB
}

func (r SettlementRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettlementRepository) Insert(e models.SettlementEntry) (int64, error) {
	dbh := r.db()
	if dbh == nil {
		return 0, fmt.Errorf("db unavailable")
	}

	res, err := dbh.Exec(`
		INSERT INTO settlements (agent_id, amount_paise, paid_on, notes)
		VALUES (?, ?, ?, ?)
	`, e.Agent, int64(e.Amount), e.PaidOn, e.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update is a destructive full-row replace; no audit trail is kept.
func (r SettlementRepository) Update(e models.SettlementEntry) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	if err := r.exists(e.ID); err != nil {
		return err
	}
	_, err := dbh.Exec(`
		UPDATE settlements
		SET agent_id = ?, amount_paise = ?, paid_on = ?, notes = ?
		WHERE id = ?
	`, e.Agent, int64(e.Amount), e.PaidOn, e.Notes, e.ID)
	return err
}

func (r SettlementRepository) Delete(id int64) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	if err := r.exists(id); err != nil {
		return err
	}
	_, err := dbh.Exec(`DELETE FROM settlements WHERE id = ?`, id)
	return err
}

func (r SettlementRepository) ListEntries() ([]models.SettlementEntry, error) {
	dbh := r.db()
	if dbh == nil {
		return nil, fmt.Errorf("db unavailable")
	}

	rows, err := dbh.Query(`
		SELECT id, agent_id, amount_paise, DATE_FORMAT(paid_on, '%Y-%m-%d'), COALESCE(notes, '')
		FROM settlements
		ORDER BY paid_on DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.SettlementEntry{}
	for rows.Next() {
		var (
			e      models.SettlementEntry
			amount int64
		)
		if err := rows.Scan(&e.ID, &e.Agent, &amount, &e.PaidOn, &e.Notes); err != nil {
			return nil, err
		}
		e.Amount = domain.Paise(amount)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r SettlementRepository) exists(id int64) error {
	var found int64
	err := r.db().QueryRow(`SELECT id FROM settlements WHERE id = ? LIMIT 1`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "settlement entry"}
	}
	return err
}
