package models

import "vitatkal/internal/domain"

// SettlementEntry is a payment to an agent against their running balance.
// It is not tied to any single booking group.
type SettlementEntry struct {
	ID     int64        `json:"id"`
	Agent  string       `json:"agent"`
	Amount domain.Paise `json:"amount"`
	PaidOn string       `json:"paidOn"` // YYYY-MM-DD
	Notes  string       `json:"notes"`
}
