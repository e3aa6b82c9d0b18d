package fleet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

// ReportInput carries whatever the caller managed to gather for one machine.
// Any field other than MachineID may be missing.
type ReportInput struct {
	MachineID       string
	AssetInfo       json.RawMessage
	CurrentReadings *models.SensorSnapshot
	Tickets         []models.Ticket
	Resolved        map[int64]bool
}

const reportRecentTicketLimit = 3

// buildReport assembles the exportable diagnostic document. Missing inputs
// produce null/empty fields, never an error.
func (f *Fleet) buildReport(input *ReportInput) *models.MachineReport {
	if input == nil {
		input = &ReportInput{}
	}

	recent := RecentTickets(
		TicketsForMachine(input.Tickets, input.MachineID),
		reportRecentTicketLimit,
	)

	return &models.MachineReport{
		MachineID:       input.MachineID,
		AssetInfo:       input.AssetInfo,
		CurrentReadings: input.CurrentReadings,
		RiskStatus:      f.classifyMachine(input.MachineID, input.Tickets, input.Resolved),
		RecentTickets:   recent,
	}
}

// exportJSON writes the report to path. The document is staged in a temp file
// and renamed into place, so a failed serialization never leaves a partial
// file behind.
func (f *Fleet) exportJSON(report *models.MachineReport, path string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetReport),
	)

	if report == nil {
		return fmt.Errorf("nothing to export")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	logger.Info("Exported diagnostic report",
		zap.String("machine_id", report.MachineID),
		zap.String("path", path))

	return nil
}

type IReportImpl struct {
	fleet *Fleet
}

func (ir *IReportImpl) BuildReport(input *ReportInput) *models.MachineReport {
	return ir.fleet.buildReport(input)
}

func (ir *IReportImpl) ExportJSON(report *models.MachineReport, path string) error {
	return ir.fleet.exportJSON(report, path)
}

func (f *Fleet) GetIReport() IReport {
	return &IReportImpl{fleet: f}
}
