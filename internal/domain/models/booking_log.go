package models

import "vitatkal/internal/domain"

// BookedLogEntry records one Pending -> Booked transition. Entries are keyed
// by group id so that reverting a group removes exactly its own entries and
// never another group's that happens to share a passenger name.
type BookedLogEntry struct {
	ID            int64            `json:"id"`
	GroupID       string           `json:"groupId"`
	Agent         string           `json:"agent"`
	Profit        domain.Paise     `json:"profit"`
	Split         map[string]int64 `json:"split"`
	DateOfJourney string           `json:"dateOfJourney"` // YYYY-MM-DD
	BookedAt      string           `json:"bookedAt"`      // YYYY-MM-DD HH:MM:SS
}
