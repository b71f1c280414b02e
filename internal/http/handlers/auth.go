package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type adminLoginRequest struct {
	AccessCode string `json:"accessCode" binding:"required"`
}

// POST /api/auth/admin
// Exchanges the operator access code for a 24h admin token.
func (a API) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if !a.accessCodeValid(req.AccessCode) {
		RespondError(c, http.StatusUnauthorized, "access denied", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(a.Env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

func (a API) accessCodeValid(code string) bool {
	if a.Env.AdminAccessHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.Env.AdminAccessHash), []byte(code)) == nil
	}
	if a.Env.AdminAccessCode != "" {
		return subtle.ConstantTimeCompare([]byte(a.Env.AdminAccessCode), []byte(code)) == 1
	}
	return false
}
