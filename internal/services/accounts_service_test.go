package services

import (
	"testing"
	"time"

	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

var testRoster = models.Roster{
	{ID: "a", DisplayName: "A"},
	{ID: "b", DisplayName: "B"},
	{ID: "c", DisplayName: "C"},
}

func logEntry(group, agent string, profit domain.Paise, split map[string]int64, doj string) models.BookedLogEntry {
	return models.BookedLogEntry{
		GroupID:       group,
		Agent:         agent,
		Profit:        profit,
		Split:         split,
		DateOfJourney: doj,
		BookedAt:      doj + " 10:00:00",
	}
}

func TestComputeBalancesEndToEnd(t *testing.T) {
	asOf := time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local)
	split := map[string]int64{"a": 50, "b": 25, "c": 25}
	entries := []models.BookedLogEntry{
		logEntry("g1", "a", 20000, split, "2025-09-20"),
	}
	settlements := []models.SettlementEntry{
		{ID: 1, Agent: "a", Amount: 6000, PaidOn: "2025-09-10"},
	}

	balances := ComputeBalances(testRoster, entries, settlements, asOf)

	if balances["a"].Earned != 10000 {
		t.Fatalf("a earned %d, want 10000", balances["a"].Earned)
	}
	if balances["b"].Earned != 5000 || balances["c"].Earned != 5000 {
		t.Fatalf("b/c earned %d/%d, want 5000 each", balances["b"].Earned, balances["c"].Earned)
	}
	if balances["a"].Due != 4000 {
		t.Fatalf("a due %d, want 4000", balances["a"].Due)
	}

	// Group reverted: its log entry gone, settlement remains.
	balances = ComputeBalances(testRoster, nil, settlements, asOf)
	if balances["a"].Earned != 0 {
		t.Fatalf("a earned %d after revert, want 0", balances["a"].Earned)
	}
	if balances["a"].Due != -6000 {
		t.Fatalf("a due %d after revert, want -6000 (overpaid, not clamped)", balances["a"].Due)
	}
}

func TestComputeBalancesDueIdentity(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)
	entries := []models.BookedLogEntry{
		logEntry("g1", "a", 10001, map[string]int64{"a": 3, "b": 33, "c": 64}, "2025-08-01"),
		logEntry("g2", "b", 33333, map[string]int64{"a": 40, "b": 40, "c": 20}, "2025-09-05"),
		logEntry("g3", "c", 1, map[string]int64{"a": 100, "b": 0, "c": 0}, "2025-09-06"),
	}
	settlements := []models.SettlementEntry{
		{ID: 1, Agent: "a", Amount: 250, PaidOn: "2025-08-20"},
		{ID: 2, Agent: "c", Amount: 9999, PaidOn: "2025-08-25"},
	}

	balances := ComputeBalances(testRoster, entries, settlements, asOf)

	var totalEarned, totalProfit domain.Paise
	for _, a := range testRoster {
		b := balances[a.ID]
		if b.Due != b.Earned-b.Settled {
			t.Fatalf("agent %s: due %d != earned %d - settled %d", a.ID, b.Due, b.Earned, b.Settled)
		}
		totalEarned += b.Earned
	}
	for _, e := range entries {
		totalProfit += e.Profit
	}
	if totalEarned != totalProfit {
		t.Fatalf("earned total %d != profit total %d (split leakage)", totalEarned, totalProfit)
	}
}

func TestComputeBalancesIsPure(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)
	entries := []models.BookedLogEntry{
		logEntry("g1", "a", 10001, map[string]int64{"a": 3, "b": 33, "c": 64}, "2025-08-01"),
	}
	settlements := []models.SettlementEntry{
		{ID: 1, Agent: "b", Amount: 42, PaidOn: "2025-08-20"},
	}

	first := ComputeBalances(testRoster, entries, settlements, asOf)
	second := ComputeBalances(testRoster, entries, settlements, asOf)
	for _, a := range testRoster {
		if first[a.ID] != second[a.ID] {
			t.Fatalf("agent %s: %+v != %+v", a.ID, first[a.ID], second[a.ID])
		}
	}
}

func TestComputeTicketCountsMonthWindow(t *testing.T) {
	asOf := time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local)
	even := map[string]int64{"a": 34, "b": 33, "c": 33}
	entries := []models.BookedLogEntry{
		logEntry("g1", "a", 100, even, "2025-09-01"),
		logEntry("g2", "a", 100, even, "2025-09-30"),
		logEntry("g3", "a", 100, even, "2025-08-31"),
		logEntry("g4", "b", 100, even, "2024-09-10"), // same month, wrong year
	}

	counts := ComputeTicketCounts(testRoster, entries, asOf)

	if counts["a"].Total != 3 || counts["a"].ThisMonth != 2 {
		t.Fatalf("a counts = %+v, want total 3 thisMonth 2", counts["a"])
	}
	if counts["b"].Total != 1 || counts["b"].ThisMonth != 0 {
		t.Fatalf("b counts = %+v, want total 1 thisMonth 0", counts["b"])
	}
	if counts["c"].Total != 0 {
		t.Fatalf("c counts = %+v, want zero", counts["c"])
	}
}

func TestComputeBalancesIgnoresOffRosterRows(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)
	settlements := []models.SettlementEntry{
		{ID: 1, Agent: "ghost", Amount: 5000, PaidOn: "2025-08-01"},
	}

	balances := ComputeBalances(testRoster, nil, settlements, asOf)
	for _, a := range testRoster {
		if balances[a.ID].Settled != 0 {
			t.Fatalf("agent %s picked up off-roster settlement", a.ID)
		}
	}
	if _, ok := balances["ghost"]; ok {
		t.Fatalf("off-roster agent should not appear in balances")
	}
}
