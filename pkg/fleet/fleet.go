package fleet

import (
	"fleetwatch/pkg/db"
	"fleetwatch/pkg/models"
)

type IRisk interface {
	ClassifyMachine(machineID string, tickets []models.Ticket, resolved map[int64]bool) models.RiskStatus
}

type ITicket interface {
	CreateManualTicket(input *models.Ticket) (*models.Ticket, error)
	ListManualTickets() ([]models.Ticket, error)
	MarkResolved(ticketID int64) error
	UnmarkResolved(ticketID int64) error
	ResolvedSet() (map[int64]bool, error)
}

type IReport interface {
	BuildReport(input *ReportInput) *models.MachineReport
	ExportJSON(report *models.MachineReport, path string) error
}

type Fleet struct {
	Db     db.DB
	Risk   IRisk
	Ticket ITicket
	Report IReport
}

type ServiceOpts struct {
	Risk   IRisk
	Ticket ITicket
	Report IReport
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Risk != nil {
		f.Risk = opts.Risk
	}
	if opts.Ticket != nil {
		f.Ticket = opts.Ticket
	}
	if opts.Report != nil {
		f.Report = opts.Report
	}
	return f
}
