package handlers

import (
	"net/http"
	"time"

	"vitatkal/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/finance
// Per-agent earned/settled/due plus ticket counts. An optional ?asOf=
// YYYY-MM-DD pins the "this month" window; default is server now.
func (a API) FinanceOverview(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid asOf date", err)
			return
		}
		asOf = parsed
	}

	accounts, err := a.accountsSvc().Overview(asOf)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asOf":     utils.FormatDate(asOf),
		"accounts": accounts,
	})
}

// GET /api/admin/agents
func (a API) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": a.Env.Roster})
}
