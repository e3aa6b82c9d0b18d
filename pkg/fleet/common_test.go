package fleet_test

import (
	. "fleetwatch/pkg/fleet"

	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"fleetwatch/pkg/db"
	"fleetwatch/pkg/fleet/mocks"
)

func GetMockFleetWithMemorySqliteDialector(t *testing.T, useMockIRisk, useMockITicket, useMockIReport bool) (
	*gomock.Controller,
	*Fleet,
	*mocks.MockIRisk,
	*mocks.MockITicket,
	*mocks.MockIReport,
) {
	ctrl := gomock.NewController(t)

	mockIRisk := mocks.NewMockIRisk(ctrl)
	mockITicket := mocks.NewMockITicket(ctrl)
	mockIReport := mocks.NewMockIReport(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	fleetInstance := (&Fleet{Db: *dbInstance})

	riskService := fleetInstance.GetIRisk()
	if useMockIRisk {
		riskService = mockIRisk
	}

	ticketService := fleetInstance.GetITicket()
	if useMockITicket {
		ticketService = mockITicket
	}

	reportService := fleetInstance.GetIReport()
	if useMockIReport {
		reportService = mockIReport
	}

	fleetInstance.WithServices(ServiceOpts{
		Risk:   riskService,
		Ticket: ticketService,
		Report: reportService,
	})

	return ctrl, fleetInstance, mockIRisk, mockITicket, mockIReport
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
