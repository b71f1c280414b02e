// Package notify delivers operator alerts for new booking requests. Delivery
// failure is never fatal to the booking itself; callers only surface a flag.
package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	intconfig "vitatkal/internal/config"
	"vitatkal/internal/domain/models"
)

// Sink receives a newly created booking group. Send reports delivery success;
// there is no retry queue.
type Sink interface {
	Send(group models.BookingGroup) bool
}

// NoopSink is used when SMTP is not configured.
type NoopSink struct{}

func (NoopSink) Send(models.BookingGroup) bool {
	log.Println("notify: SMTP not configured, skipping booking notification")
	return false
}

// SMTPSink sends a plain-text mail per booking group over STARTTLS.
type SMTPSink struct {
	Cfg intconfig.SMTP
}

// FromEnv picks the SMTP sink when credentials are present.
func FromEnv(cfg intconfig.SMTP) Sink {
	if cfg.Username == "" || cfg.Password == "" || cfg.To == "" {
		return NoopSink{}
	}
	return SMTPSink{Cfg: cfg}
}

func (s SMTPSink) Send(group models.BookingGroup) bool {
	lead := "booking"
	if len(group.Passengers) > 0 {
		lead = group.Passengers[0].Name
	}
	subject := fmt.Sprintf("New Vitatkal Booking Request from %s", lead)

	from := s.Cfg.From
	if from == "" {
		from = s.Cfg.Username
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Group ID: %s\r\n", group.GroupID)
	fmt.Fprintf(&body, "Route: %s -> %s\r\n", group.Trip.BoardingStation, group.Trip.Destination)
	fmt.Fprintf(&body, "Class: %s\r\n", group.Trip.TravelClass)
	fmt.Fprintf(&body, "Phone: %s\r\n", group.Trip.Phone)
	fmt.Fprintf(&body, "Date of Journey: %s\r\n", group.Trip.DateOfJourney)
	fmt.Fprintf(&body, "Submitted: %s\r\n", group.Trip.SubmittedOn)
	fmt.Fprintf(&body, "Passengers (%d):\r\n", len(group.Passengers))
	for i, p := range group.Passengers {
		fmt.Fprintf(&body, "  %d. %s, %d, %s\r\n", i+1, p.Name, p.Age, p.Gender)
	}

	msg := strings.Builder{}
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", s.Cfg.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body.String())

	addr := s.Cfg.Host + ":" + s.Cfg.Port
	auth := smtp.PlainAuth("", s.Cfg.Username, s.Cfg.Password, s.Cfg.Host)
	if err := smtp.SendMail(addr, auth, from, []string{s.Cfg.To}, []byte(msg.String())); err != nil {
		log.Printf("notify: failed to send booking mail: %v", err)
		return false
	}
	return true
}
