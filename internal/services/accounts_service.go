package services

import (
	"database/sql"
	"time"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
	"vitatkal/internal/repositories"
	"vitatkal/internal/utils"
)

// AgentBalance is derived on every read, never stored.
type AgentBalance struct {
	Earned  domain.Paise `json:"earned"`
	Settled domain.Paise `json:"settled"`
	Due     domain.Paise `json:"due"` // earned - settled; negative means overpaid
}

// TicketCount summarizes booking-log rows per agent (one per group).
type TicketCount struct {
	Total     int `json:"total"`
	ThisMonth int `json:"thisMonth"`
}

// ComputeBalances folds the two ledger snapshots into per-agent balances.
// Pure: asOf is explicit, identical inputs give identical outputs. Entries
// for agents outside the roster are ignored; splits were validated against
// the roster when recorded.
func ComputeBalances(roster models.Roster, entries []models.BookedLogEntry, settlements []models.SettlementEntry, asOf time.Time) map[string]AgentBalance {
	balances := make(map[string]AgentBalance, len(roster))
	for _, a := range roster {
		balances[a.ID] = AgentBalance{}
	}

	for _, e := range entries {
		shares := utils.SplitShares(e.Profit, e.Split)
		for _, a := range roster {
			b := balances[a.ID]
			b.Earned += shares[a.ID]
			balances[a.ID] = b
		}
	}

	for _, s := range settlements {
		b, ok := balances[s.Agent]
		if !ok {
			continue
		}
		b.Settled += s.Amount
		balances[s.Agent] = b
	}

	for id, b := range balances {
		b.Due = b.Earned - b.Settled
		balances[id] = b
	}
	return balances
}

// ComputeTicketCounts counts booking-log rows per roster agent; "this month"
// compares the journey's (year, month) against asOf.
func ComputeTicketCounts(roster models.Roster, entries []models.BookedLogEntry, asOf time.Time) map[string]TicketCount {
	counts := make(map[string]TicketCount, len(roster))
	for _, a := range roster {
		counts[a.ID] = TicketCount{}
	}

	for _, e := range entries {
		c, ok := counts[e.Agent]
		if !ok {
			continue
		}
		c.Total++
		if doj, err := utils.ParseDate(e.DateOfJourney); err == nil && utils.SameMonth(doj, asOf) {
			c.ThisMonth++
		}
		counts[e.Agent] = c
	}
	return counts
}

// AccountsService loads ledger snapshots and runs the pure folds above.
type AccountsService struct {
	LogRepo        repositories.BookingLogRepository
	SettlementRepo repositories.SettlementRepository
	Roster         models.Roster
	DB             *sql.DB
}

func (s AccountsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// AgentAccount is one roster agent's full financial view.
type AgentAccount struct {
	Agent   models.Agent `json:"agent"`
	Balance AgentBalance `json:"balance"`
	Tickets TicketCount  `json:"tickets"`
}

// Overview assembles the admin finance view for every roster agent.
func (s AccountsService) Overview(asOf time.Time) ([]AgentAccount, error) {
	logRepo := s.LogRepo
	if logRepo.DB == nil {
		logRepo = repositories.BookingLogRepository{DB: s.db()}
	}
	settleRepo := s.SettlementRepo
	if settleRepo.DB == nil {
		settleRepo = repositories.SettlementRepository{DB: s.db()}
	}

	entries, err := logRepo.ListEntries()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load booking log", Err: err}
	}
	settlements, err := settleRepo.ListEntries()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load settlements", Err: err}
	}

	balances := ComputeBalances(s.Roster, entries, settlements, asOf)
	counts := ComputeTicketCounts(s.Roster, entries, asOf)

	out := make([]AgentAccount, 0, len(s.Roster))
	for _, a := range s.Roster {
		out = append(out, AgentAccount{
			Agent:   a,
			Balance: balances[a.ID],
			Tickets: counts[a.ID],
		})
	}
	return out, nil
}
