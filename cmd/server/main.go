package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/db"
	"fleetwatch/pkg/fleet"
	fleetHttp "fleetwatch/pkg/http"
	"fleetwatch/pkg/upstream"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	fleetDbType := os.Getenv(common.EnvKeyFleetDBType)
	switch fleetDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "", "memory":
		// memory is the session-store default
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FLEET_DB_TYPE: " + fleetDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFleetHttpHostPort))
	upstreamBaseURL := strings.TrimSpace(os.Getenv(common.EnvKeyFleetUpstreamBaseURL))
	if upstreamBaseURL == "" {
		log.Fatal("FLEET_UPSTREAM_BASE_URL not set, the service needs the telemetry backend to poll")
	}

	var pollIntervalSecs int64
	var defaultRate float64
	var defaultBurst int64

	if pollIntervalSecs, err = strconv.ParseInt(common.GetEnvOr(common.EnvKeyFleetPollIntervalSecs, "10"), 10, 64); err != nil {
		log.Fatal("Invalid FLEET_POLL_INTERVAL_SECS, should be an int value")
	}

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFleetDefaultRate), 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFleetDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	fleetCore := fleet.Fleet{
		Db: *dbInstance,
	}
	fleetCore.WithServices(fleet.ServiceOpts{
		Risk:   fleetCore.GetIRisk(),
		Ticket: fleetCore.GetITicket(),
		Report: fleetCore.GetIReport(),
	})

	client := upstream.NewClient(upstreamBaseURL)
	poller := upstream.NewPoller(client, time.Duration(pollIntervalSecs)*time.Second)

	// first snapshot before serving; a failure is logged, not fatal, the
	// poller will catch up on its next tick
	firstCtx, cancelFirst := context.WithTimeout(context.Background(), 15*time.Second)
	if err := poller.Refresh(firstCtx); err != nil {
		logger.Warn("Initial upstream refresh failed, serving empty snapshot until the poller recovers", zap.Error(err))
	}
	cancelFirst()

	go poller.Run(context.Background())
	logger.Info("Poller started",
		zap.String("upstream", upstreamBaseURL),
		zap.Int64("interval_secs", pollIntervalSecs))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &fleetHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            &fleetCore,
		Poller:           poller,
		Upstream:         client,
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
