package handlers

import (
	intconfig "vitatkal/internal/config"
	"vitatkal/internal/http/middleware"
	"vitatkal/internal/notify"
	"vitatkal/internal/repositories"
	"vitatkal/internal/services"

	"github.com/gin-gonic/gin"
)

// API carries startup configuration into the handlers. Services are built
// per request so each carries the request id for logging.
type API struct {
	Env  intconfig.Env
	Sink notify.Sink
}

func (a API) bookingSvc(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{},
		Roster:      a.Env.Roster,
		Sink:        a.Sink,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a API) settlementSvc(c *gin.Context) services.SettlementService {
	return services.SettlementService{
		SettlementRepo: repositories.SettlementRepository{},
		Roster:         a.Env.Roster,
		RequestID:      middleware.GetRequestID(c),
	}
}

func (a API) accountsSvc() services.AccountsService {
	return services.AccountsService{
		LogRepo:        repositories.BookingLogRepository{},
		SettlementRepo: repositories.SettlementRepository{},
		Roster:         a.Env.Roster,
	}
}

func (a API) docsSvc(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}
