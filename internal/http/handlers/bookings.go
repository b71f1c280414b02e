package handlers

import (
	"net/http"

	"vitatkal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type passengerPayload struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type createBookingRequest struct {
	Passengers      []passengerPayload `json:"passengers" binding:"required"`
	BoardingStation string             `json:"boardingStation"`
	Destination     string             `json:"destination"`
	TravelClass     string             `json:"travelClass"`
	Phone           string             `json:"phone"`
	DateOfJourney   string             `json:"dateOfJourney"`
}

// POST /api/bookings
// Public intake endpoint for the booking form.
func (a API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	passengers := make([]models.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, models.Passenger{Name: p.Name, Age: p.Age, Gender: p.Gender})
	}

	trip := models.TripFields{
		BoardingStation: req.BoardingStation,
		Destination:     req.Destination,
		TravelClass:     req.TravelClass,
		Phone:           req.Phone,
		DateOfJourney:   req.DateOfJourney,
	}

	group, notified, err := a.bookingSvc(c).AddGroup(passengers, trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"groupId":  group.GroupID,
		"status":   group.Status,
		"notified": notified,
	})
}
