package services

import (
	"database/sql"
	"fmt"
	"sync"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
	"vitatkal/internal/notify"
	"vitatkal/internal/repositories"
	"vitatkal/internal/utils"

	"github.com/google/uuid"
)

// ledgerMu serializes every mutating ledger operation across both the
// booking and settlement services. Two concurrent admin tabs then queue
// instead of clobbering each other's write. Reads run without it.
var ledgerMu sync.Mutex

type BookingService struct {
	BookingRepo repositories.BookingRepository
	Roster      models.Roster
	Sink        notify.Sink
	RequestID   string
	DB          *sql.DB
	Now         func() string // booked-at clock, overridable in tests
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) now() string {
	if s.Now != nil {
		return s.Now()
	}
	return utils.FormatDateTime(utils.NowUTC())
}

// AddGroup validates an intake submission, persists the group as Pending and
// fires the operator notification. The bool reports notification delivery;
// a false value never fails the booking.
func (s BookingService) AddGroup(passengers []models.Passenger, trip models.TripFields) (models.BookingGroup, bool, error) {
	if len(passengers) == 0 {
		return models.BookingGroup{}, false, domain.ValidationError{Field: "passengers", Msg: "at least one passenger required"}
	}

	clean := make([]models.Passenger, 0, len(passengers))
	for i, p := range passengers {
		p.Name = utils.NormalizeSpace(p.Name)
		p.Gender = utils.TrimOrEmpty(p.Gender)
		if p.Name == "" {
			return models.BookingGroup{}, false, domain.ValidationError{Field: fmt.Sprintf("passengers[%d].name", i), Msg: "required"}
		}
		if p.Age <= 0 {
			return models.BookingGroup{}, false, domain.ValidationError{Field: fmt.Sprintf("passengers[%d].age", i), Msg: "must be positive"}
		}
		if p.Gender == "" {
			return models.BookingGroup{}, false, domain.ValidationError{Field: fmt.Sprintf("passengers[%d].gender", i), Msg: "required"}
		}
		clean = append(clean, p)
	}

	trip.BoardingStation = utils.NormalizeSpace(trip.BoardingStation)
	trip.Destination = utils.NormalizeSpace(trip.Destination)
	trip.TravelClass = utils.TrimOrEmpty(trip.TravelClass)
	trip.Phone = utils.TrimOrEmpty(trip.Phone)
	trip.DateOfJourney = utils.TrimOrEmpty(trip.DateOfJourney)

	switch {
	case trip.BoardingStation == "":
		return models.BookingGroup{}, false, domain.ValidationError{Field: "boardingStation", Msg: "required"}
	case trip.Destination == "":
		return models.BookingGroup{}, false, domain.ValidationError{Field: "destination", Msg: "required"}
	case !domain.IsTravelClass(trip.TravelClass):
		return models.BookingGroup{}, false, domain.ValidationError{Field: "travelClass", Msg: "must be one of Sleeper/3A/2A/1A/CC/2S"}
	case !utils.IsTenDigitPhone(trip.Phone):
		return models.BookingGroup{}, false, domain.ValidationError{Field: "phone", Msg: "must be exactly 10 digits"}
	}
	if _, err := utils.ParseDate(trip.DateOfJourney); err != nil {
		return models.BookingGroup{}, false, domain.ValidationError{Field: "dateOfJourney", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if trip.SubmittedOn == "" {
		trip.SubmittedOn = utils.FormatDate(utils.NowUTC())
	}

	group := models.BookingGroup{
		GroupID:    uuid.NewString(),
		Passengers: clean,
		Trip:       trip,
		Status:     domain.StatusPending,
	}

	ledgerMu.Lock()
	err := s.bookings().CreateGroup(group)
	ledgerMu.Unlock()
	if err != nil {
		return models.BookingGroup{}, false, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "add_group",
		fmt.Sprintf("group_id=%s passengers=%d", group.GroupID, len(clean)))

	notified := s.sink().Send(group)
	return group, notified, nil
}

// MarkBooked assigns an agent, fixes the profit and split, and appends the
// booking-log entry. Split percentages must total exactly 100 over the roster.
func (s BookingService) MarkBooked(groupID, agent string, profit domain.Paise, split map[string]int64) error {
	if !s.Roster.Contains(agent) {
		return domain.UnknownAgentError{Agent: agent}
	}
	if profit < 0 {
		return domain.ValidationError{Field: "profit", Msg: "must not be negative"}
	}
	for id, pct := range split {
		if !s.Roster.Contains(id) {
			return domain.UnknownAgentError{Agent: id}
		}
		if pct < 0 {
			return domain.ValidationError{Field: "split", Msg: "percentages must not be negative"}
		}
	}
	if total := utils.SplitTotal(split); total != 100 {
		return domain.InvalidSplitError{Total: total}
	}

	assignment := models.BookedAssignment{Agent: agent, Profit: profit, Split: split}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if err := s.bookings().MarkBooked(groupID, assignment, s.now()); err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to mark booked", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "mark_booked",
		fmt.Sprintf("group_id=%s agent=%s profit=%s", groupID, agent, utils.FormatRupees(profit)))
	return nil
}

// MarkPending reverts a booked group and removes exactly its own log entries.
func (s BookingService) MarkPending(groupID string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if err := s.bookings().MarkPending(groupID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to revert booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "mark_pending", "group_id="+groupID)
	return nil
}

// DeleteGroup removes the party entirely: group, passengers, log entries.
func (s BookingService) DeleteGroup(groupID string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if err := s.bookings().DeleteGroup(groupID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to delete booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "delete_group", "group_id="+groupID)
	return nil
}

// ListGroups returns a snapshot read; ordering (journey date desc) is done
// by the repository for presentation and is not a ledger contract.
func (s BookingService) ListGroups() ([]models.BookingGroup, error) {
	groups, err := s.bookings().ListGroups()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return groups, nil
}

// GetGroup loads a single group.
func (s BookingService) GetGroup(groupID string) (models.BookingGroup, error) {
	g, err := s.bookings().GetGroupByID(groupID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.BookingGroup{}, err
		}
		return models.BookingGroup{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	return g, nil
}

func (s BookingService) sink() notify.Sink {
	if s.Sink != nil {
		return s.Sink
	}
	return notify.NoopSink{}
}
