package services

import (
	"bytes"
	"testing"

	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
)

func TestGenerateETicket(t *testing.T) {
	group := models.BookingGroup{
		GroupID: "b1946ac9-2f61-4a2c-9f0d-9d2c4bfa631e",
		Passengers: []models.Passenger{
			{Name: "Asha", Age: 34, Gender: "Female"},
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
		Assignment: &models.BookedAssignment{
			Agent:  "a",
			Profit: 20000,
			Split:  map[string]int64{"a": 100},
		},
	}

	svc := DocsService{
		Loader: func(groupID string) (models.BookingGroup, error) {
			if groupID != group.GroupID {
				return models.BookingGroup{}, domain.NotFoundError{Resource: "booking group"}
			}
			return group, nil
		},
	}

	data, filename, err := svc.GenerateETicket(group.GroupID)
	if err != nil {
		t.Fatalf("GenerateETicket error: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (%d bytes)", len(data))
	}
	if filename != "VITATKAL_b1946ac9-2f61-4a2c-9f0d-9d2c4bfa631e.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateETicketMissingGroup(t *testing.T) {
	svc := DocsService{
		Loader: func(string) (models.BookingGroup, error) {
			return models.BookingGroup{}, domain.NotFoundError{Resource: "booking group"}
		},
	}

	if _, _, err := svc.GenerateETicket("nope"); !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}
