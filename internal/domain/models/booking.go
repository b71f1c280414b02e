package models

import "vitatkal/internal/domain"

// Passenger is one traveler inside a booking group.
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// TripFields are shared by every passenger of a group.
type TripFields struct {
	BoardingStation string `json:"boardingStation"`
	Destination     string `json:"destination"`
	TravelClass     string `json:"travelClass"`
	Phone           string `json:"phone"`
	DateOfJourney   string `json:"dateOfJourney"` // YYYY-MM-DD
	SubmittedOn     string `json:"submittedOn"`   // YYYY-MM-DD
}

// BookedAssignment exists only while a group is Booked. Profit and split are
// fixed at booking time and never recomputed.
type BookedAssignment struct {
	Agent  string           `json:"agent"`
	Profit domain.Paise     `json:"profit"`
	Split  map[string]int64 `json:"split"` // agent id -> whole percent, totals 100
}

// BookingGroup is one travel party: a single logical record holding its
// passengers, rather than the flat row-per-passenger shape of the CSV export.
type BookingGroup struct {
	GroupID    string            `json:"groupId"`
	Passengers []Passenger       `json:"passengers"`
	Trip       TripFields        `json:"trip"`
	Status     domain.Status     `json:"status"`
	Assignment *BookedAssignment `json:"assignment,omitempty"`
}
