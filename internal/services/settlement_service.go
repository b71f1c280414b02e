package services

import (
	"database/sql"
	"fmt"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
	"vitatkal/internal/repositories"
	"vitatkal/internal/utils"
)

type SettlementService struct {
	SettlementRepo repositories.SettlementRepository
	Roster         models.Roster
	RequestID      string
	DB             *sql.DB
}

func (s SettlementService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SettlementService) settlements() repositories.SettlementRepository {
	if s.SettlementRepo.DB != nil {
		return s.SettlementRepo
	}
	return repositories.SettlementRepository{DB: s.db()}
}

func (s SettlementService) validate(e models.SettlementEntry) error {
	if !s.Roster.Contains(e.Agent) {
		return domain.UnknownAgentError{Agent: e.Agent}
	}
	// Strictly positive: a zero-paise settlement records nothing.
	if e.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	if _, err := utils.ParseDate(e.PaidOn); err != nil {
		return domain.ValidationError{Field: "paidOn", Msg: "must be YYYY-MM-DD", Err: err}
	}
	return nil
}

// Record stores a payment against an agent's running balance.
func (s SettlementService) Record(agent string, amount domain.Paise, paidOn, notes string) (int64, error) {
	entry := models.SettlementEntry{
		Agent:  utils.TrimOrEmpty(agent),
		Amount: amount,
		PaidOn: utils.TrimOrEmpty(paidOn),
		Notes:  utils.TrimOrEmpty(notes),
	}
	if err := s.validate(entry); err != nil {
		return 0, err
	}

	ledgerMu.Lock()
	id, err := s.settlements().Insert(entry)
	ledgerMu.Unlock()
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to record settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "settlement", "record",
		fmt.Sprintf("id=%d agent=%s amount=%s", id, entry.Agent, utils.FormatRupees(amount)))
	return id, nil
}

// Update replaces a settlement row in place. Destructive: the previous
// values are not kept anywhere.
func (s SettlementService) Update(id int64, agent string, amount domain.Paise, paidOn, notes string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	entry := models.SettlementEntry{
		ID:     id,
		Agent:  utils.TrimOrEmpty(agent),
		Amount: amount,
		PaidOn: utils.TrimOrEmpty(paidOn),
		Notes:  utils.TrimOrEmpty(notes),
	}
	if err := s.validate(entry); err != nil {
		return err
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if err := s.settlements().Update(entry); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to update settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "settlement", "update", fmt.Sprintf("id=%d", id))
	return nil
}

func (s SettlementService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if err := s.settlements().Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to delete settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "settlement", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s SettlementService) ListEntries() ([]models.SettlementEntry, error) {
	entries, err := s.settlements().ListEntries()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load settlements", Err: err}
	}
	return entries, nil
}
