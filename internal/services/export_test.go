package services

import (
	"testing"

	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

func TestCSVRowsFlattensPerPassenger(t *testing.T) {
	groups := []models.BookingGroup{
		{
			GroupID: "g1",
			Passengers: []models.Passenger{
				{Name: "Asha", Age: 34, Gender: "Female"},
				{Name: "Ravi", Age: 36, Gender: "Male"},
			},
			Trip: models.TripFields{
				BoardingStation: "Chennai Central",
				Destination:     "Bangalore",
				TravelClass:     "3A",
				Phone:           "9383496183",
				DateOfJourney:   "2025-10-01",
				SubmittedOn:     "2025-09-15",
			},
			Status: domain.StatusBooked,
		},
	}

	rows := CSVRows(groups)

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 passengers", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][9] != "Status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "Asha" || first[1] != "34" || first[3] != "3A" || first[9] != "Booked" {
		t.Fatalf("unexpected first row: %v", first)
	}
	second := rows[2]
	if second[0] != "Ravi" || second[4] != "Chennai Central" {
		t.Fatalf("unexpected second row: %v", second)
	}
	// trip fields repeat identically on every row of the group
	for i := 3; i < 10; i++ {
		if first[i] != second[i] {
			t.Fatalf("column %d differs between group rows: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestCSVRowsEmpty(t *testing.T) {
	rows := CSVRows(nil)
	if len(rows) != 1 {
		t.Fatalf("empty export should still carry the header, got %d rows", len(rows))
	}
}
