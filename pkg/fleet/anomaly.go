package fleet

import (
	"sync"

	"go.uber.org/zap"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
)

// Live-breach thresholds for the fleet anomaly counter. Fixed by the upstream
// detection model; not runtime-configurable.
const (
	ThresholdAirTempK    float64 = 305
	ThresholdTorqueNm    float64 = 70
	ThresholdToolWearMin int     = 150
)

// IsLiveAnomaly reports whether a snapshot is in live breach of any fixed
// threshold. Comparison is strict: a reading exactly at a threshold is not a
// breach.
func IsLiveAnomaly(s *models.SensorSnapshot) bool {
	return s.AirTempK > ThresholdAirTempK ||
		s.TorqueNm > ThresholdTorqueNm ||
		s.ToolWearMin > ThresholdToolWearMin
}

// CountLiveAnomalies counts machines in live breach. Pure snapshot
// classification with no memory of prior readings, so a machine hovering at a
// boundary will flicker between polls; see Debouncer for the stabilized
// variant.
func CountLiveAnomalies(overview []models.SensorSnapshot) int {
	count := 0
	for i := range overview {
		if IsLiveAnomaly(&overview[i]) {
			count++
		}
	}
	return count
}

// Debouncer wraps the threshold check with a hold time: a breach flags the
// machine immediately, but the flag only clears after holdCount consecutive
// clean snapshots. Opt-in; CountLiveAnomalies keeps the raw semantics.
type Debouncer struct {
	mu        sync.Mutex
	holdCount int
	breached  map[string]bool
	cleanRuns map[string]int
}

func NewDebouncer(holdCount int) *Debouncer {
	if holdCount < 1 {
		holdCount = 1
	}
	return &Debouncer{
		holdCount: holdCount,
		breached:  make(map[string]bool),
		cleanRuns: make(map[string]int),
	}
}

// Observe records one snapshot for a machine and returns its debounced breach
// state.
func (d *Debouncer) Observe(s *models.SensorSnapshot) bool {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAnomaly),
	)

	d.mu.Lock()
	defer d.mu.Unlock()

	if IsLiveAnomaly(s) {
		if !d.breached[s.MachineID] {
			logger.Info("Machine entered live breach", zap.String("machine_id", s.MachineID))
		}
		d.breached[s.MachineID] = true
		d.cleanRuns[s.MachineID] = 0
		return true
	}

	if !d.breached[s.MachineID] {
		return false
	}

	d.cleanRuns[s.MachineID]++
	if d.cleanRuns[s.MachineID] >= d.holdCount {
		delete(d.breached, s.MachineID)
		delete(d.cleanRuns, s.MachineID)
		logger.Info("Machine breach cleared",
			zap.String("machine_id", s.MachineID),
			zap.Int("clean_snapshots", d.holdCount))
		return false
	}
	return true
}

// CountLiveAnomalies feeds a whole overview through the debouncer and counts
// machines whose debounced state is still breached.
func (d *Debouncer) CountLiveAnomalies(overview []models.SensorSnapshot) int {
	count := 0
	for i := range overview {
		if d.Observe(&overview[i]) {
			count++
		}
	}
	return count
}
