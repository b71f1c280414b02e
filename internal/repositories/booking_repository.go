package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateGroup inserts the group row and all passenger rows in one transaction.
func (r BookingRepository) CreateGroup(g models.BookingGroup) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	tx, err := dbh.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO booking_groups
			(group_id, boarding_station, destination, travel_class, phone, date_of_journey, submitted_on, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.GroupID, g.Trip.BoardingStation, g.Trip.Destination, g.Trip.TravelClass,
		g.Trip.Phone, g.Trip.DateOfJourney, g.Trip.SubmittedOn, string(g.Status)); err != nil {
		return err
	}

	for i, p := range g.Passengers {
		if _, err := tx.Exec(`
			INSERT INTO booking_passengers (group_id, position, passenger_name, age, gender)
			VALUES (?, ?, ?, ?, ?)
		`, g.GroupID, i+1, p.Name, p.Age, p.Gender); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetGroupByID loads one group with its passengers.
func (r BookingRepository) GetGroupByID(groupID string) (models.BookingGroup, error) {
	dbh := r.db()
	if dbh == nil {
		return models.BookingGroup{}, fmt.Errorf("db unavailable")
	}

	var (
		g         models.BookingGroup
		status    string
		agent     sql.NullString
		profit    sql.NullInt64
		splitJSON sql.NullString
	)
	err := dbh.QueryRow(`
		SELECT group_id, boarding_station, destination, travel_class, phone,
		       DATE_FORMAT(date_of_journey, '%Y-%m-%d'),
		       DATE_FORMAT(submitted_on, '%Y-%m-%d'),
		       status, agent_id, profit_paise, split_json
		FROM booking_groups
		WHERE group_id = ?
		LIMIT 1
	`, groupID).Scan(
		&g.GroupID,
		&g.Trip.BoardingStation,
		&g.Trip.Destination,
		&g.Trip.TravelClass,
		&g.Trip.Phone,
		&g.Trip.DateOfJourney,
		&g.Trip.SubmittedOn,
		&status,
		&agent,
		&profit,
		&splitJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingGroup{}, domain.NotFoundError{Resource: "booking group"}
		}
		return models.BookingGroup{}, err
	}

	g.Status = domain.Status(status)
	g.Assignment = assignmentFromColumns(agent, profit, splitJSON)

	rows, err := dbh.Query(`
		SELECT passenger_name, age, gender
		FROM booking_passengers
		WHERE group_id = ?
		ORDER BY position
	`, groupID)
	if err != nil {
		return models.BookingGroup{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.Name, &p.Age, &p.Gender); err != nil {
			return models.BookingGroup{}, err
		}
		g.Passengers = append(g.Passengers, p)
	}
	return g, rows.Err()
}

// ListGroups returns every group, newest journey first, with passengers
// attached. Two queries plus an in-memory join keeps it a consistent read.
func (r BookingRepository) ListGroups() ([]models.BookingGroup, error) {
	dbh := r.db()
	if dbh == nil {
		return nil, fmt.Errorf("db unavailable")
	}

	rows, err := dbh.Query(`
		SELECT group_id, boarding_station, destination, travel_class, phone,
		       DATE_FORMAT(date_of_journey, '%Y-%m-%d'),
		       DATE_FORMAT(submitted_on, '%Y-%m-%d'),
		       status, agent_id, profit_paise, split_json
		FROM booking_groups
		ORDER BY date_of_journey DESC, group_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.BookingGroup{}
	index := map[string]int{}
	for rows.Next() {
		var (
			g         models.BookingGroup
			status    string
			agent     sql.NullString
			profit    sql.NullInt64
			splitJSON sql.NullString
		)
		if err := rows.Scan(
			&g.GroupID,
			&g.Trip.BoardingStation,
			&g.Trip.Destination,
			&g.Trip.TravelClass,
			&g.Trip.Phone,
			&g.Trip.DateOfJourney,
			&g.Trip.SubmittedOn,
			&status,
			&agent,
			&profit,
			&splitJSON,
		); err != nil {
			return nil, err
		}
		g.Status = domain.Status(status)
		g.Assignment = assignmentFromColumns(agent, profit, splitJSON)
		g.Passengers = []models.Passenger{}
		index[g.GroupID] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := dbh.Query(`
		SELECT group_id, passenger_name, age, gender
		FROM booking_passengers
		ORDER BY group_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var (
			gid string
			p   models.Passenger
		)
		if err := prows.Scan(&gid, &p.Name, &p.Age, &p.Gender); err != nil {
			return nil, err
		}
		if i, ok := index[gid]; ok {
			groups[i].Passengers = append(groups[i].Passengers, p)
		}
	}
	return groups, prows.Err()
}

// MarkBooked stores the assignment on the group and appends the booking-log
// entry in the same transaction.
func (r BookingRepository) MarkBooked(groupID string, a models.BookedAssignment, bookedAt string) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	splitJSON, err := json.Marshal(a.Split)
	if err != nil {
		return err
	}

	tx, err := dbh.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	doj, status, err := lockGroup(tx, groupID)
	if err != nil {
		return err
	}
	// Assignment is created exactly once per Pending -> Booked transition.
	if status == string(domain.StatusBooked) {
		return domain.ValidationError{Field: "status", Msg: "group is already booked"}
	}

	if _, err := tx.Exec(`
		UPDATE booking_groups
		SET status = ?, agent_id = ?, profit_paise = ?, split_json = ?
		WHERE group_id = ?
	`, string(domain.StatusBooked), a.Agent, int64(a.Profit), string(splitJSON), groupID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO booking_log (group_id, agent_id, profit_paise, split_json, date_of_journey, booked_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, groupID, a.Agent, int64(a.Profit), string(splitJSON), doj, bookedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// MarkPending reverts the group and removes its booking-log entries. Removal
// keys on group_id only, never on passenger name.
func (r BookingRepository) MarkPending(groupID string) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	tx, err := dbh.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, _, err := lockGroup(tx, groupID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE booking_groups
		SET status = ?, agent_id = NULL, profit_paise = NULL, split_json = NULL
		WHERE group_id = ?
	`, string(domain.StatusPending), groupID); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM booking_log WHERE group_id = ?`, groupID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteGroup removes the group, its passenger rows, and its log entries.
func (r BookingRepository) DeleteGroup(groupID string) error {
	dbh := r.db()
	if dbh == nil {
		return fmt.Errorf("db unavailable")
	}

	tx, err := dbh.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, _, err := lockGroup(tx, groupID); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM booking_passengers WHERE group_id = ?`, groupID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM booking_log WHERE group_id = ?`, groupID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM booking_groups WHERE group_id = ?`, groupID); err != nil {
		return err
	}

	return tx.Commit()
}

// lockGroup pins the group row for the transaction and returns its date of
// journey and current status; missing rows surface as NotFoundError.
func lockGroup(tx *sql.Tx, groupID string) (string, string, error) {
	var doj, status string
	err := tx.QueryRow(`
		SELECT DATE_FORMAT(date_of_journey, '%Y-%m-%d'), status
		FROM booking_groups
		WHERE group_id = ?
		FOR UPDATE
	`, groupID).Scan(&doj, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", domain.NotFoundError{Resource: "booking group"}
	}
	return doj, status, err
}

func assignmentFromColumns(agent sql.NullString, profit sql.NullInt64, splitJSON sql.NullString) *models.BookedAssignment {
	if !agent.Valid || agent.String == "" {
		return nil
	}
	a := &models.BookedAssignment{
		Agent:  agent.String,
		Profit: domain.Paise(profit.Int64),
		Split:  map[string]int64{},
	}
	if splitJSON.Valid && splitJSON.String != "" {
		_ = json.Unmarshal([]byte(splitJSON.String), &a.Split)
	}
	return a
}
