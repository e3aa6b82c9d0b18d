package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFleetDBType string = "FLEET_DB_TYPE"
	EnvKeyFleetDbPath string = "FLEET_DB_PATH"

	EnvKeyFleetHttpHostPort string = "FLEET_HTTP_HOST_PORT"

	EnvKeyFleetUpstreamBaseURL  string = "FLEET_UPSTREAM_BASE_URL"
	EnvKeyFleetPollIntervalSecs string = "FLEET_POLL_INTERVAL_SECS"

	EnvKeyFleetDefaultRate  string = "FLEET_DEFAULT_RATE"
	EnvKeyFleetDefaultBurst string = "FLEET_DEFAULT_BURST"

	LoggerNameFleetCore      string = "fleet_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameUpstreamClient string = "upstream_client"

	LoggerFieldFleetCategory   string = "category"
	LoggerCategoryFleetTicket  string = "ticket"
	LoggerCategoryFleetRisk    string = "risk"
	LoggerCategoryFleetAnomaly string = "anomaly"
	LoggerCategoryFleetReport  string = "report"
	LoggerCategoryFleetPoller  string = "poller"
)
