package services

import (
	"strconv"

	"vitatkal/internal/domain/models"
)

// csvHeader matches the flat-file column set bookings were originally kept
// in, so exports drop into the operator's existing spreadsheets.
var csvHeader = []string{
	"Name", "Age", "Gender", "Class", "Boarding Station",
	"Destination", "Phone", "Date of Journey", "Date", "Status",
}

// CSVRows flattens groups into one row per passenger. The normalized model
// only takes this tabular shape at the export boundary.
func CSVRows(groups []models.BookingGroup) [][]string {
	rows := make([][]string, 0, len(groups)+1)
	rows = append(rows, csvHeader)
	for _, g := range groups {
		for _, p := range g.Passengers {
			rows = append(rows, []string{
				p.Name,
				strconv.Itoa(p.Age),
				p.Gender,
				g.Trip.TravelClass,
				g.Trip.BoardingStation,
				g.Trip.Destination,
				g.Trip.Phone,
				g.Trip.DateOfJourney,
				g.Trip.SubmittedOn,
				string(g.Status),
			})
		}
	}
	return rows
}
