package fleet

import (
	"fmt"

	"go.uber.org/zap"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

// Presentation tokens consumed directly by the dashboard.
const (
	riskColorCritical    = "bg-accent-danger"
	riskColorWarning     = "bg-accent-warning"
	riskColorOperational = "bg-accent-success"
)

const operationalRUL = "> 2 weeks"

// classifyMachine maps a machine's unresolved tickets to a coarse health
// status. Among unresolved urgent tickets CRITICAL outranks WARNING
// regardless of age; within the winning level the most recent ticket supplies
// the issue label and RUL. No urgent ticket means Operational, whatever the
// ticket history looks like. Malformed input degrades to the safe default and
// never panics.
func (f *Fleet) classifyMachine(machineID string, tickets []models.Ticket, resolved map[int64]bool) models.RiskStatus {
	var critical, warning *models.Ticket

	for i := range tickets {
		t := &tickets[i]
		if t.MachineID != machineID || t.IsResolved() {
			continue
		}
		if resolved != nil && resolved[t.ID] {
			continue
		}
		switch t.RiskLevel {
		case models.RiskLevelCritical:
			if critical == nil || MoreRecent(t, critical) {
				critical = t
			}
		case models.RiskLevelWarning:
			if warning == nil || MoreRecent(t, warning) {
				warning = t
			}
		}
	}

	if critical != nil {
		return urgentStatus("Critical", riskColorCritical, critical)
	}
	if warning != nil {
		return urgentStatus("Warning", riskColorWarning, warning)
	}

	return models.RiskStatus{
		Health: "Operational",
		Color:  riskColorOperational,
		Issue:  "Normal",
		RUL:    operationalRUL,
	}
}

func urgentStatus(health, color string, t *models.Ticket) models.RiskStatus {
	issue := t.FailureType
	if issue == "" {
		// malformed ticket, keep the label meaningful
		issue = health + " Issue"
	}

	rul := "N/A"
	if t.PredictedRUL != nil {
		rul = fmt.Sprintf("%.0fh", *t.PredictedRUL)
	}

	return models.RiskStatus{
		Health: health,
		Color:  color,
		Issue:  issue,
		RUL:    rul,
	}
}

type IRiskImpl struct {
	fleet *Fleet
}

func (ir *IRiskImpl) ClassifyMachine(machineID string, tickets []models.Ticket, resolved map[int64]bool) models.RiskStatus {
	status := ir.fleet.classifyMachine(machineID, tickets, resolved)

	if status.Health != "Operational" {
		logger := common.GetLoggerWith(
			common.LoggerNameFleetCore,
			zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetRisk),
		)
		logger.Info("Machine classified as at risk",
			zap.String("machine_id", machineID),
			zap.Reflect("status", status))
	}

	return status
}

func (f *Fleet) GetIRisk() IRisk {
	return &IRiskImpl{fleet: f}
}
