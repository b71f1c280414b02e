package api

import (
	stdhttp "net/http"

	intconfig "vitatkal/internal/config"
	h "vitatkal/internal/http/handlers"
	"vitatkal/internal/http/middleware"
	"vitatkal/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, sink notify.Sink) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
	}))

	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.API{Env: env, Sink: sink}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/db-check", h.DBCheck)

		// Public intake
		apiGroup.POST("/bookings", a.CreateBooking)

		// Admin auth
		apiGroup.POST("/auth/admin", a.AdminLogin)

		// Admin surface
		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RequireAdmin([]byte(env.JWTSecret)))
		{
			admin.GET("/bookings", a.ListBookings)
			admin.GET("/bookings/export", a.ExportBookingsCSV)
			admin.GET("/bookings/:id/e-ticket", a.BookingETicket)
			admin.PUT("/bookings/:id/book", a.MarkBooked)
			admin.PUT("/bookings/:id/pending", a.MarkPending)
			admin.DELETE("/bookings/:id", a.DeleteBooking)

			admin.GET("/settlements", a.ListSettlements)
			admin.POST("/settlements", a.CreateSettlement)
			admin.PUT("/settlements/:id", a.UpdateSettlement)
			admin.DELETE("/settlements/:id", a.DeleteSettlement)

			admin.GET("/finance", a.FinanceOverview)
			admin.GET("/agents", a.ListAgents)
		}
	}

	return r
}
