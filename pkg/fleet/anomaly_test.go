package fleet_test

import (
	. "fleetwatch/pkg/fleet"

	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"fleetwatch/pkg/common"
	"fleetwatch/pkg/models"
	_ "fleetwatch/pkg/testing"
)

func TestIsLiveAnomaly_StrictBoundaries(t *testing.T) {
	// exactly at a threshold is not a breach
	atBoundary := models.SensorSnapshot{MachineID: "M-1", AirTempK: 305.0, TorqueNm: 70.0, ToolWearMin: 150}
	assert.False(t, IsLiveAnomaly(&atBoundary))

	justOver := models.SensorSnapshot{MachineID: "M-1", AirTempK: 305.0001}
	assert.True(t, IsLiveAnomaly(&justOver))

	torque := models.SensorSnapshot{MachineID: "M-1", TorqueNm: 70.5}
	assert.True(t, IsLiveAnomaly(&torque))

	wear := models.SensorSnapshot{MachineID: "M-1", ToolWearMin: 151}
	assert.True(t, IsLiveAnomaly(&wear))
}

func TestCountLiveAnomalies(t *testing.T) {
	overview := []models.SensorSnapshot{
		// one breached threshold is enough, machine counts once
		{MachineID: "M-1", AirTempK: 310, TorqueNm: 10, ToolWearMin: 5},
		{MachineID: "M-2", AirTempK: 300, TorqueNm: 10, ToolWearMin: 5},
		// multiple breaches still count once
		{MachineID: "M-3", AirTempK: 310, TorqueNm: 80, ToolWearMin: 200},
	}

	assert.Equal(t, 2, CountLiveAnomalies(overview))
	assert.Equal(t, 0, CountLiveAnomalies(nil))
}

func TestDebouncer_HoldsBreachAcrossCleanSnapshots(t *testing.T) {
	common.SetTestLoggerNop()

	d := NewDebouncer(2)

	hot := models.SensorSnapshot{MachineID: "M-1", AirTempK: 310}
	cool := models.SensorSnapshot{MachineID: "M-1", AirTempK: 300}

	assert.True(t, d.Observe(&hot))

	// one clean snapshot is not enough to clear
	assert.True(t, d.Observe(&cool))
	assert.False(t, d.Observe(&cool))

	// fully cleared, stays clear
	assert.False(t, d.Observe(&cool))
}

func TestDebouncer_BreachResetsCleanRun(t *testing.T) {
	common.SetTestLoggerNop()

	d := NewDebouncer(3)

	hot := models.SensorSnapshot{MachineID: "M-1", TorqueNm: 90}
	cool := models.SensorSnapshot{MachineID: "M-1", TorqueNm: 10}

	assert.True(t, d.Observe(&hot))
	assert.True(t, d.Observe(&cool))
	assert.True(t, d.Observe(&cool))

	// breach in the middle of a clean run starts the count over
	assert.True(t, d.Observe(&hot))
	assert.True(t, d.Observe(&cool))
	assert.True(t, d.Observe(&cool))
	assert.False(t, d.Observe(&cool))
}

func TestDebouncer_CountLiveAnomalies(t *testing.T) {
	common.SetTestLoggerNop()

	d := NewDebouncer(2)

	breach := []models.SensorSnapshot{
		{MachineID: "M-1", AirTempK: 310},
		{MachineID: "M-2", AirTempK: 300},
	}
	clean := []models.SensorSnapshot{
		{MachineID: "M-1", AirTempK: 300},
		{MachineID: "M-2", AirTempK: 300},
	}

	assert.Equal(t, 1, d.CountLiveAnomalies(breach))

	// raw counter flickers to zero immediately, the debounced one holds
	assert.Equal(t, 0, CountLiveAnomalies(clean))
	assert.Equal(t, 1, d.CountLiveAnomalies(clean))
	assert.Equal(t, 0, d.CountLiveAnomalies(clean))
}

func TestDebouncer_MachinesIndependent(t *testing.T) {
	common.SetTestLoggerNop()

	d := NewDebouncer(2)

	assert.True(t, d.Observe(&models.SensorSnapshot{MachineID: "M-1", ToolWearMin: 200}))
	assert.False(t, d.Observe(&models.SensorSnapshot{MachineID: "M-2", ToolWearMin: 5}))
}

func TestDebouncer_LogsBreachTransitions(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	d := NewDebouncer(2)

	hot := models.SensorSnapshot{MachineID: "M-1", AirTempK: 310}
	cool := models.SensorSnapshot{MachineID: "M-1", AirTempK: 300}

	// only the transition logs, a held breach stays quiet
	d.Observe(&hot)
	d.Observe(&hot)
	d.Observe(&cool)
	d.Observe(&cool)

	entered, cleared := 0, 0
	for _, log := range ParseLogs(buf) {
		lobj := log.(map[string]any)
		if lobj["category"] != "anomaly" || lobj["machine_id"] != "M-1" {
			continue
		}
		switch lobj["msg"] {
		case "Machine entered live breach":
			entered++
		case "Machine breach cleared":
			cleared++
		}
	}
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, cleared)
}
