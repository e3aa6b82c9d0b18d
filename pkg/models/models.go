package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Risk levels recognized as urgent by the classifier. The set is open in
// practice: manually filed tickets may carry arbitrary strings, and anything
// unrecognized is treated as non-urgent.
const (
	RiskLevelCritical string = "CRITICAL"
	RiskLevelWarning  string = "WARNING"
	RiskLevelNormal   string = "NORMAL"
)

const (
	TicketSourceHuman string = "human"
	TicketSourceModel string = "model"
)

// ManualReportMarker is the legacy text marker the backend embeds in
// ai_analysis to flag human-filed tickets. Source is the authoritative field;
// the marker is only consulted when Source is absent.
const ManualReportMarker string = "Manual Report"

const TicketStatusResolved string = "Resolved"

// Failure types produced by the detection model. Manual tickets may use these
// or any free text (e.g. "Random Failure", "Other").
const (
	FailureTypePower           string = "Power Failure"
	FailureTypeToolWear        string = "Tool Wear Failure"
	FailureTypeOverstrain      string = "Overstrain Failure"
	FailureTypeHeatDissipation string = "Heat Dissipation Failure"
)

// SensorSnapshot is one point-in-time reading for one machine, as served by
// the upstream telemetry backend. Immutable once received.
type SensorSnapshot struct {
	MachineID    string  `json:"machine_id"`
	AirTempK     float64 `json:"air_temp_k"`
	ProcessTempK float64 `json:"process_temp_k"`
	RPM          int     `json:"rpm"`
	TorqueNm     float64 `json:"torque_nm"`
	ToolWearMin  int     `json:"tool_wear_min"`
	Type         string  `json:"type"`
}

// Ticket is one detected or manually reported anomaly event for a machine.
// Upstream tickets come from the detection model; manual tickets are stored
// in the session database and carry Source = "human" and Confidence = 1.0.
type Ticket struct {
	ID             int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MachineID      string    `gorm:"index" json:"machine_id"`
	Timestamp      time.Time `json:"timestamp"`
	FailureType    string    `json:"failure_type"`
	RiskLevel      string    `json:"risk_level"`
	PredictedRUL   *float64  `json:"predicted_rul"`
	Confidence     float64   `json:"confidence"`
	AIAnalysis     string    `json:"ai_analysis"`
	Recommendation string    `json:"recommendation,omitempty"`
	Status         string    `json:"status,omitempty"`
	Source         string    `json:"source,omitempty"`

	// Sensor context captured at filing time, present on manual tickets when
	// the machine was in the overview snapshot.
	AirTempC *float64 `json:"air_temp,omitempty"`
	RPM      *int     `json:"rpm,omitempty"`
	TorqueNm *float64 `json:"torque,omitempty"`
}

// IsUrgent reports whether the ticket demands attention. Unknown or missing
// risk levels are non-urgent.
func (t *Ticket) IsUrgent() bool {
	return t.RiskLevel == RiskLevelCritical || t.RiskLevel == RiskLevelWarning
}

func (t *Ticket) IsResolved() bool {
	return t.Status == TicketStatusResolved
}

// IsManual reports whether the ticket was filed by a human. Falls back to the
// legacy ai_analysis marker for backends that predate the Source field.
func (t *Ticket) IsManual() bool {
	if t.Source != "" {
		return t.Source == TicketSourceHuman
	}
	return strings.Contains(t.AIAnalysis, ManualReportMarker)
}

// ResolvedMark records a session-local "solved" toggle for a ticket. It does
// not mutate the underlying ticket record.
type ResolvedMark struct {
	TicketID int64 `gorm:"primaryKey;autoIncrement:false" json:"ticket_id"`
}

// DashboardStats are aggregate counters computed by the upstream backend and
// passed through as-is.
type DashboardStats struct {
	HighRiskCount    int      `json:"high_risk_count"`
	AvgRULAllTickets *float64 `json:"avg_rul_all_tickets"`
}

// FleetSummary is the derived dashboard header: upstream counters plus counts
// computed over the current overview snapshot. Never stored.
type FleetSummary struct {
	TotalMachines             int      `json:"total_machines"`
	MachinesWithLiveAnomalies int      `json:"machines_with_live_anomalies"`
	HighRiskCount             int      `json:"high_risk_count"`
	AvgRULAllTickets          *float64 `json:"avg_rul_all_tickets"`
}

// RiskStatus is a machine's coarse health classification. Color keeps the
// presentation tokens the dashboard consumes directly.
type RiskStatus struct {
	Health string `json:"health"`
	Color  string `json:"color"`
	Issue  string `json:"issue"`
	RUL    string `json:"rul"`
}

// MachineReport is the exportable diagnostic document for one machine. Fields
// may be null/empty; assembly never fails on a missing dependency.
type MachineReport struct {
	MachineID       string          `json:"machine_id"`
	AssetInfo       json.RawMessage `json:"asset_info"`
	CurrentReadings *SensorSnapshot `json:"current_readings"`
	RiskStatus      RiskStatus      `json:"risk_status"`
	RecentTickets   []Ticket        `json:"recent_tickets"`
}
