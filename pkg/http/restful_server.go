package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"fleetwatch/pkg/fleet"
	"fleetwatch/pkg/upstream"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	Poller           *upstream.Poller
	Upstream         *upstream.Client
	RateLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// clientKey scopes rate limits to the machine on machine routes and to the
// caller everywhere else.
func clientKey(c *gin.Context) string {
	if machineID := c.Param("machine_id"); machineID != "" {
		return machineID
	}
	return c.ClientIP()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api/data")
	{
		api.GET("/machines/overview", rs.GetOverview)
		api.GET("/dashboard/stats", rs.GetStats)
		api.GET("/tickets", rs.GetTickets)
		api.POST("/tickets", rs.PostTicket)
		api.POST("/tickets/:ticket_id/resolve", rs.ResolveTicket)
		api.DELETE("/tickets/:ticket_id/resolve", rs.UnresolveTicket)
		api.GET("/machines/:machine_id/live_sensor", rs.GetLiveSensor)
		api.GET("/machines/:machine_id/report", rs.GetReport)
		api.POST("/limiter", rs.PostLimiter)
	}
}
