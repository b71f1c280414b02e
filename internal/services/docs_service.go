package services

import (
	"bytes"
	"fmt"
	"strings"

	"vitatkal/internal/domain"
	"vitatkal/internal/domain/models"
	"vitatkal/internal/repositories"
	"vitatkal/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking-summary PDF handed to customers once their
// group is booked.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(groupID string) (models.BookingGroup, error)
}

func (s DocsService) GenerateETicket(groupID string) ([]byte, string, error) {
	group, err := s.loadGroup(groupID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "group_id="+groupID)
	return buildETicketPDF(group)
}

func (s DocsService) loadGroup(groupID string) (models.BookingGroup, error) {
	if s.Loader != nil {
		return s.Loader(groupID)
	}
	return s.BookingRepo.GetGroupByID(groupID)
}

func buildETicketPDF(g models.BookingGroup) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Vitatkal Booking", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VITATKAL BOOKING SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Group ID       : %s", g.GroupID),
		fmt.Sprintf("Route          : %s -> %s", safe(g.Trip.BoardingStation, "-"), safe(g.Trip.Destination, "-")),
		fmt.Sprintf("Class          : %s", safe(g.Trip.TravelClass, "-")),
		fmt.Sprintf("Date of Journey: %s", safe(g.Trip.DateOfJourney, "-")),
		fmt.Sprintf("Phone          : %s", safe(g.Trip.Phone, "-")),
		fmt.Sprintf("Submitted      : %s", safe(g.Trip.SubmittedOn, "-")),
		fmt.Sprintf("Status         : %s", string(g.Status)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Passengers (%d)", len(g.Passengers)))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	for i, p := range g.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s, %d, %s", i+1, p.Name, p.Age, p.Gender))
		pdf.Ln(7)
	}

	if g.Status == domain.StatusBooked && g.Assignment != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "This booking has been confirmed. You will be contacted on the phone number above for ticket delivery.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VITATKAL_%s.pdf", safeFilenamePart(g.GroupID))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
