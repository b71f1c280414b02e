package domain

// Status represents the booking lifecycle state of a group.
type Status string

const (
	StatusPending Status = "Pending"
	StatusBooked  Status = "Booked"
)

// Paise is a fixed-point rupee amount in hundredths (1 rupee = 100 paise).
// All currency fields use it so split sums reconcile without float drift.
type Paise int64

// TravelClasses lists the accepted train classes for intake.
var TravelClasses = []string{"Sleeper", "3A", "2A", "1A", "CC", "2S"}

// IsTravelClass reports whether c is one of the accepted classes.
func IsTravelClass(c string) bool {
	for _, tc := range TravelClasses {
		if tc == c {
			return true
		}
	}
	return false
}
