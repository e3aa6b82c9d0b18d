package upstream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

// ErrRefreshInFlight is returned when a refresh is requested while another is
// still running; the caller keeps the current snapshot.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// Snapshot is one consistent view of the upstream data categories. A refresh
// replaces the whole snapshot; overview, stats and tickets are never mixed
// across polls.
type Snapshot struct {
	Overview  []models.SensorSnapshot
	Stats     *models.DashboardStats
	Tickets   []models.Ticket
	FetchedAt time.Time
}

// Poller refreshes the snapshot on a fixed interval. A failed refresh keeps
// the previous snapshot; concurrent refresh requests are de-duplicated.
type Poller struct {
	client   *Client
	interval time.Duration

	mu         sync.RWMutex
	snap       Snapshot
	refreshing atomic.Bool
}

func NewPoller(client *Client, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
	}
}

func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// Refresh fetches all three categories concurrently and atomically replaces
// the snapshot when every fetch succeeded.
func (p *Poller) Refresh(ctx context.Context) error {
	if !p.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer p.refreshing.Store(false)

	var (
		overview []models.SensorSnapshot
		stats    *models.DashboardStats
		tickets  []models.Ticket
		errs     [3]error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		overview, errs[0] = p.client.Overview(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, errs[1] = p.client.Stats(ctx)
	}()
	go func() {
		defer wg.Done()
		tickets, errs[2] = p.client.Tickets(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	if overview == nil {
		overview = []models.SensorSnapshot{}
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}

	p.mu.Lock()
	p.snap = Snapshot{
		Overview:  overview,
		Stats:     stats,
		Tickets:   tickets,
		FetchedAt: time.Now(),
	}
	p.mu.Unlock()

	return nil
}

// Run polls until the context is canceled. Errors are logged and the loop
// keeps going; the dashboard retries by waiting for the next tick.
func (p *Poller) Run(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameUpstreamClient,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetPoller),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Poller stopped")
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				if errors.Is(err, ErrRefreshInFlight) {
					logger.Debug("Skipping poll tick, refresh still running")
				} else {
					logger.Warn("Poll failed, keeping last snapshot", zap.Error(err))
				}
			}
		}
	}
}
