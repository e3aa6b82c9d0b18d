// upstreamsim fakes the external telemetry/ML backend for development and
// load testing. It serves randomized but plausible data in the exact shapes
// the fleetwatch poller consumes.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

var machineIDs = []string{"M-001", "M-002", "A-101", "B-202", "C-303"}

var failureTypes = []string{
	models.FailureTypePower,
	models.FailureTypeToolWear,
	models.FailureTypeOverstrain,
	models.FailureTypeHeatDissipation,
}

type simulator struct {
	mu      sync.Mutex
	tickets []models.Ticket
	nextID  int64
}

func (s *simulator) snapshotFor(machineID string) models.SensorSnapshot {
	snap := models.SensorSnapshot{
		MachineID:   machineID,
		AirTempK:    gofakeit.Float64Range(295, 312),
		RPM:         gofakeit.Number(1200, 2800),
		TorqueNm:    gofakeit.Float64Range(10, 80),
		ToolWearMin: gofakeit.Number(0, 250),
		Type:        gofakeit.RandomString([]string{"L", "M", "H"}),
	}
	snap.ProcessTempK = snap.AirTempK + gofakeit.Float64Range(5, 12)
	return snap
}

func (s *simulator) maybeEmitTicket() {
	if gofakeit.Number(0, 3) != 0 {
		return
	}
	s.emitTicket()
}

func (s *simulator) emitTicket() {
	s.mu.Lock()
	defer s.mu.Unlock()

	rul := gofakeit.Float64Range(2, 400)
	ticket := models.Ticket{
		ID:           s.nextID,
		MachineID:    gofakeit.RandomString(machineIDs),
		Timestamp:    time.Now().UTC(),
		FailureType:  gofakeit.RandomString(failureTypes),
		RiskLevel:    gofakeit.RandomString([]string{models.RiskLevelCritical, models.RiskLevelWarning, models.RiskLevelNormal}),
		PredictedRUL: &rul,
		Confidence:   gofakeit.Float64Range(0.5, 0.99),
		AIAnalysis:   gofakeit.Sentence(8),
		Source:       models.TicketSourceModel,
	}
	s.nextID++

	// newest first, bounded backlog
	s.tickets = append([]models.Ticket{ticket}, s.tickets...)
	if len(s.tickets) > 50 {
		s.tickets = s.tickets[:50]
	}
}

func (s *simulator) allTickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *simulator) stats() models.DashboardStats {
	tickets := s.allTickets()

	highRisk := 0
	var rulSum float64
	var rulCount int
	for _, t := range tickets {
		if t.RiskLevel == models.RiskLevelCritical {
			highRisk++
		}
		if t.PredictedRUL != nil {
			rulSum += *t.PredictedRUL
			rulCount++
		}
	}

	stats := models.DashboardStats{HighRiskCount: highRisk}
	if rulCount > 0 {
		avg := rulSum / float64(rulCount)
		stats.AvgRULAllTickets = &avg
	}
	return stats
}

func main() {
	// .env is optional here, the simulator runs fine on defaults
	_ = godotenv.Load()

	hostPort := strings.TrimSpace(os.Getenv("UPSTREAMSIM_HOST_PORT"))
	if hostPort == "" {
		hostPort = ":8000"
	}

	sim := &simulator{nextID: time.Now().Unix()}
	for range 10 {
		sim.emitTicket()
	}

	go func() {
		for {
			time.Sleep(5 * time.Second)
			sim.maybeEmitTicket()
		}
	}()

	server := gin.Default()

	server.GET("/api/data/machines/overview", func(c *gin.Context) {
		c.JSON(http.StatusOK, common.Mapper(machineIDs, sim.snapshotFor))
	})

	server.GET("/api/data/dashboard/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.stats())
	})

	server.GET("/api/data/tickets", func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.allTickets())
	})

	server.GET("/api/data/machines/:machine_id/live_sensor", func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.snapshotFor(c.Param("machine_id")))
	})

	server.GET("/api/admin/assets/:machine_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"machine_id":   c.Param("machine_id"),
			"asset_type":   gofakeit.RandomString([]string{"Milling", "Lathe", "Press"}),
			"location":     fmt.Sprintf("Plant %s, Bay %d", gofakeit.RandomString([]string{"A-12", "B-7"}), gofakeit.Number(1, 20)),
			"manufacturer": gofakeit.Company(),
		})
	})

	fmt.Printf("upstreamsim serving %d machines on %s\n", len(machineIDs), hostPort)
	if err := server.Run(hostPort); err != nil {
		log.Fatalf("upstreamsim failed to serve: %v", err)
	}
}
