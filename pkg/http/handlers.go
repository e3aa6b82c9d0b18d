package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"go.uber.org/zap"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/fleet"
	"fleetwatch/pkg/models"
)

func (rs *RestfulServer) GetOverview(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	snap := rs.Poller.Snapshot()
	overview := snap.Overview
	if overview == nil {
		overview = []models.SensorSnapshot{}
	}

	c.JSON(http.StatusOK, overview)
}

func (rs *RestfulServer) GetStats(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	snap := rs.Poller.Snapshot()

	summary := models.FleetSummary{
		TotalMachines:             len(snap.Overview),
		MachinesWithLiveAnomalies: fleet.CountLiveAnomalies(snap.Overview),
	}
	if snap.Stats != nil {
		summary.HighRiskCount = snap.Stats.HighRiskCount
		summary.AvgRULAllTickets = snap.Stats.AvgRULAllTickets
	}

	c.JSON(http.StatusOK, summary)
}

func (rs *RestfulServer) GetTickets(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	local, err := rs.Fleet.Ticket.ListManualTickets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	snap := rs.Poller.Snapshot()
	merged := fleet.SortByRecency(fleet.MergeTickets(local, snap.Tickets))

	c.JSON(http.StatusOK, merged)
}

type TicketRequest struct {
	MachineID    string  `json:"machine_id"`
	FailureType  string  `json:"failure_type"`
	RiskLevel    string  `json:"risk_level"`
	PredictedRUL float64 `json:"predicted_rul"`
}

var ticketRequestSchema = z.Struct(z.Shape{
	"MachineID":   z.String().Required(),
	"FailureType": z.String().Required(),
	// open string on purpose, manual entry is not restricted to the model's enum
	"RiskLevel":    z.String().Required(),
	"PredictedRUL": z.Float64().Required(),
})

func (rs *RestfulServer) PostTicket(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req TicketRequest
	if err := ticketRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rul := req.PredictedRUL
	ticket := &models.Ticket{
		MachineID:    req.MachineID,
		FailureType:  req.FailureType,
		RiskLevel:    req.RiskLevel,
		PredictedRUL: &rul,
	}

	// capture the machine's current readings as filing-time context; a machine
	// absent from the overview files without them
	snap := rs.Poller.Snapshot()
	for i := range snap.Overview {
		if snap.Overview[i].MachineID != req.MachineID {
			continue
		}
		airTempC := snap.Overview[i].AirTempK - 273.15
		rpm := snap.Overview[i].RPM
		torqueNm := snap.Overview[i].TorqueNm
		ticket.AirTempC = &airTempC
		ticket.RPM = &rpm
		ticket.TorqueNm = &torqueNm
		break
	}

	created, err := rs.Fleet.Ticket.CreateManualTicket(ticket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (rs *RestfulServer) ResolveTicket(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("ticket_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	if err := rs.Fleet.Ticket.MarkResolved(ticketID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) UnresolveTicket(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("ticket_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	if err := rs.Fleet.Ticket.UnmarkResolved(ticketID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetLiveSensor(c *gin.Context) {
	machineID := c.Param("machine_id")

	if !rs.CheckClientLimiter(machineID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	snapshot, err := rs.Upstream.LiveSensor(c.Request.Context(), machineID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (rs *RestfulServer) GetReport(c *gin.Context) {
	machineID := c.Param("machine_id")

	if !rs.CheckClientLimiter(machineID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	snap := rs.Poller.Snapshot()

	// report assembly never blocks on a missing dependency; whatever cannot
	// be gathered stays null in the document
	input := &fleet.ReportInput{MachineID: machineID, Tickets: snap.Tickets}

	if local, err := rs.Fleet.Ticket.ListManualTickets(); err == nil {
		input.Tickets = fleet.MergeTickets(local, snap.Tickets)
	}
	if resolved, err := rs.Fleet.Ticket.ResolvedSet(); err == nil {
		input.Resolved = resolved
	}
	if sensor, err := rs.Upstream.LiveSensor(c.Request.Context(), machineID); err == nil {
		input.CurrentReadings = sensor
	}
	if asset, err := rs.Upstream.Asset(c.Request.Context(), machineID); err == nil {
		input.AssetInfo = asset
	}

	c.JSON(http.StatusOK, rs.Fleet.Report.BuildReport(input))
}

type LimiterRequest struct {
	ClientKey string  `json:"client_key"`
	Rate      float64 `json:"rate"`
	Burst     int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"ClientKey": z.String().Required(),
	"Rate":      z.Float64().Required(),
	"Burst":     z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.ClientKey, req.Rate, req.Burst)

	common.GetLoggerWith(common.LoggerNameRestfulServer).Info("Client limiter updated",
		zap.String("client_key", req.ClientKey),
		zap.Float64("rate", req.Rate),
		zap.Int("burst", req.Burst))

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
