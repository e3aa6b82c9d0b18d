package fleet

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

func (f *Fleet) createManualTicket(input *models.Ticket) (*models.Ticket, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetTicket),
	)

	if input.MachineID == "" {
		return nil, fmt.Errorf("manual ticket requires a machine_id")
	}

	ticket := *input
	ticket.Source = models.TicketSourceHuman
	ticket.Confidence = 1.0

	if ticket.Timestamp.IsZero() {
		ticket.Timestamp = time.Now().UTC()
	}
	if ticket.ID == 0 {
		// timestamp-derived id, same scheme the legacy client used
		ticket.ID = ticket.Timestamp.UnixMilli()
	}
	if ticket.AIAnalysis == "" {
		// legacy marker so older backends still recognize the ticket as human-filed
		ticket.AIAnalysis = fmt.Sprintf("%s Created. Issue: %s. Severity: %s.",
			models.ManualReportMarker, ticket.FailureType, ticket.RiskLevel)
	}

	logger.Info("Received manual ticket", zap.Reflect("ticket", ticket))

	if err := f.Db.Conn.Create(&ticket).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored manual ticket", zap.Reflect("ticket", ticket))

	return &ticket, nil
}

func (f *Fleet) listManualTickets() ([]models.Ticket, error) {
	tickets := make([]models.Ticket, 0)
	err := f.Db.Conn.
		Order("id desc").
		Find(&tickets).Error
	return tickets, err
}

func (f *Fleet) markResolved(ticketID int64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetTicket),
	)

	mark := models.ResolvedMark{TicketID: ticketID}
	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticket_id"}},
		DoNothing: true,
	}).Create(&mark).Error

	if err == nil {
		logger.Info("Marked ticket resolved", zap.Int64("ticket_id", ticketID))
	}

	return err
}

func (f *Fleet) unmarkResolved(ticketID int64) error {
	return f.Db.Conn.Delete(&models.ResolvedMark{}, "ticket_id = ?", ticketID).Error
}

func (f *Fleet) resolvedSet() (map[int64]bool, error) {
	var marks []models.ResolvedMark
	if err := f.Db.Conn.Find(&marks).Error; err != nil {
		return nil, err
	}

	set := common.Reducer(marks,
		func(acc map[int64]bool, m models.ResolvedMark) map[int64]bool {
			acc[m.TicketID] = true
			return acc
		},
		make(map[int64]bool, len(marks)))
	return set, nil
}

type ITicketImpl struct {
	fleet *Fleet
}

func (it *ITicketImpl) CreateManualTicket(input *models.Ticket) (*models.Ticket, error) {
	return it.fleet.createManualTicket(input)
}

func (it *ITicketImpl) ListManualTickets() ([]models.Ticket, error) {
	return it.fleet.listManualTickets()
}

func (it *ITicketImpl) MarkResolved(ticketID int64) error {
	return it.fleet.markResolved(ticketID)
}

func (it *ITicketImpl) UnmarkResolved(ticketID int64) error {
	return it.fleet.unmarkResolved(ticketID)
}

func (it *ITicketImpl) ResolvedSet() (map[int64]bool, error) {
	return it.fleet.resolvedSet()
}

func (f *Fleet) GetITicket() ITicket {
	return &ITicketImpl{fleet: f}
}
