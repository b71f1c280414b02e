package handlers

import (
	"encoding/csv"
	"net/http"

	"vitatkal/internal/http/middleware"
	"vitatkal/internal/services"
	"vitatkal/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/bookings
func (a API) ListBookings(c *gin.Context) {
	groups, err := a.bookingSvc(c).ListGroups()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": groups, "total": len(groups)})
}

type markBookedRequest struct {
	Agent  string           `json:"agent" binding:"required"`
	Profit string           `json:"profit" binding:"required"` // decimal rupees, e.g. "200.00"
	Split  map[string]int64 `json:"split" binding:"required"`  // agent id -> whole percent
}

// PUT /api/admin/bookings/:id/book
func (a API) MarkBooked(c *gin.Context) {
	var req markBookedRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	profit, err := utils.ParseRupees(req.Profit)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid profit amount", err)
		return
	}

	if err := a.bookingSvc(c).MarkBooked(c.Param("id"), req.Agent, profit, req.Split); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": c.Param("id"), "status": "Booked"})
}

// PUT /api/admin/bookings/:id/pending
func (a API) MarkPending(c *gin.Context) {
	if err := a.bookingSvc(c).MarkPending(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": c.Param("id"), "status": "Pending"})
}

// DELETE /api/admin/bookings/:id
func (a API) DeleteBooking(c *gin.Context) {
	if err := a.bookingSvc(c).DeleteGroup(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": c.Param("id"), "deleted": true})
}

// GET /api/admin/bookings/export
// Flat CSV, one row per passenger, original column layout.
func (a API) ExportBookingsCSV(c *gin.Context) {
	groups, err := a.bookingSvc(c).ListGroups()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="vitatkal_requests.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(services.CSVRows(groups)); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "export", "csv_error", err.Error())
	}
}

// GET /api/admin/bookings/:id/e-ticket
func (a API) BookingETicket(c *gin.Context) {
	data, filename, err := a.docsSvc(c).GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
