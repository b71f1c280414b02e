package handlers

import (
	"net/http"
	"strconv"

	"vitatkal/internal/utils"

	"github.com/gin-gonic/gin"
)

type settlementRequest struct {
	Agent  string `json:"agent" binding:"required"`
	Amount string `json:"amount" binding:"required"` // decimal rupees
	PaidOn string `json:"paidOn" binding:"required"` // YYYY-MM-DD
	Notes  string `json:"notes"`
}

// GET /api/admin/settlements
func (a API) ListSettlements(c *gin.Context) {
	entries, err := a.settlementSvc(c).ListEntries()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": entries, "total": len(entries)})
}

// POST /api/admin/settlements
func (a API) CreateSettlement(c *gin.Context) {
	var req settlementRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	amount, err := utils.ParseRupees(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid settlement amount", err)
		return
	}

	id, err := a.settlementSvc(c).Record(req.Agent, amount, req.PaidOn, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/admin/settlements/:id
func (a API) UpdateSettlement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid settlement id", err)
		return
	}

	var req settlementRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	amount, err := utils.ParseRupees(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid settlement amount", err)
		return
	}

	if err := a.settlementSvc(c).Update(id, req.Agent, amount, req.PaidOn, req.Notes); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
}

// DELETE /api/admin/settlements/:id
func (a API) DeleteSettlement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid settlement id", err)
		return
	}

	if err := a.settlementSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
