package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"footsense-monitor/internal/config"
	"footsense-monitor/internal/models"
)

const baseTimestamp = int64(1700000000000)

func newTestMonitor() *Monitor {
	return NewMonitor(&config.Config{}, zap.NewNop(), nil)
}

func nominalReading(ts int64) models.SensorReading {
	return models.SensorReading{
		Timestamp:        ts,
		ZoneTemperatures: [models.ZoneCount]float64{32, 32, 32, 32},
		ZonePressures:    [models.ZoneCount]float64{40, 40, 40, 40},
		SpO2:             98,
		HeartRate:        72,
		Acceleration:     models.Vector3{Z: 9.8},
		BatteryLevel:     100,
		Activity:         models.ActivityResting,
	}
}

// Healthy at-rest reading: zero risk, no alerts.
func TestMonitor_NominalReading(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	score, alerts := m.ProcessReading(ctx, nominalReading(baseTimestamp))

	assert.Equal(t, 0, score.OverallScore)
	assert.Equal(t, models.RiskLow, score.Severity)
	assert.Empty(t, alerts)
	assert.Equal(t, 0, m.Alerts().Len())

	current, ok := m.CurrentScore()
	require.True(t, ok)
	assert.Equal(t, score, current)
}

// A single hot zone: critical temperature penalty in the sub-score and a
// critical zone-scoped temperature alert.
func TestMonitor_HotZone(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	reading := nominalReading(baseTimestamp)
	reading.ZoneTemperatures[models.ZoneToe] = 38

	score, alerts := m.ProcessReading(ctx, reading)

	assert.GreaterOrEqual(t, score.TemperatureScore, 30)

	var temp *models.Alert
	for i := range alerts {
		if alerts[i].Type == models.AlertTemperature {
			temp = &alerts[i]
		}
	}
	require.NotNil(t, temp)
	assert.Equal(t, models.SeverityCritical, temp.Severity)
	assert.Equal(t, "Toe", temp.Zone)
	assert.Equal(t, m.Alerts().Len(), len(alerts))
}

// Pressure rising 35 kPa per step: the spike rule fires on the first step
// with delta over the limit, stays quiet through the cooldown window, and
// fires again once it has passed. Synthetic timestamps drive the cooldown,
// not the wall clock.
func TestMonitor_PressureSpikeCooldown(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()
	cooldownMs := (5 * time.Minute).Milliseconds()

	countSpikes := func(alerts []models.Alert) int {
		n := 0
		for _, a := range alerts {
			if a.Title == "Pressure Spike" {
				n++
			}
		}
		return n
	}

	spikes := 0
	heel := 40.0
	for i := 0; i < 4; i++ {
		reading := nominalReading(baseTimestamp + int64(i)*2000)
		reading.ZonePressures[models.ZoneHeel] = heel
		_, alerts := m.ProcessReading(ctx, reading)
		spikes += countSpikes(alerts)
		heel += 35
	}
	assert.Equal(t, 1, spikes)

	late := nominalReading(baseTimestamp + cooldownMs + 10000)
	late.ZonePressures[models.ZoneHeel] = heel
	_, alerts := m.ProcessReading(ctx, late)
	assert.Equal(t, 1, countSpikes(alerts))
}

// Critically low SpO2: the +50 contribution appears exactly once in the
// circulation sub-score and a critical circulation alert is emitted.
func TestMonitor_CriticalSpO2(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	reading := nominalReading(baseTimestamp)
	reading.SpO2 = 80

	score, alerts := m.ProcessReading(ctx, reading)

	assert.Equal(t, 50, score.CirculationScore)

	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertCirculation, alerts[0].Type)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
}

func TestMonitor_CurrentScoreBeforeFirstReading(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()

	_, ok := m.CurrentScore()
	assert.False(t, ok)
}

func TestMonitor_HistoryWindow(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.ProcessReading(ctx, nominalReading(baseTimestamp+int64(i)*2000))
	}

	history := m.History()
	require.Len(t, history, 3)
	assert.Equal(t, baseTimestamp, history[0].Timestamp)
	assert.Equal(t, baseTimestamp+4000, history[2].Timestamp)
}

func TestMonitor_SubscribeReceivesAlerts(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	ch, cancel := m.Subscribe()
	defer cancel()

	reading := nominalReading(baseTimestamp)
	reading.SpO2 = 80
	_, alerts := m.ProcessReading(ctx, reading)
	require.Len(t, alerts, 1)

	select {
	case got := <-ch:
		assert.Equal(t, alerts[0].ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("no alert delivered to subscriber")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()
	ctx := context.Background()

	reading := nominalReading(baseTimestamp)
	reading.SpO2 = 80
	_, alerts := m.ProcessReading(ctx, reading)
	require.Len(t, alerts, 1)

	m.Reset()

	_, ok := m.CurrentScore()
	assert.False(t, ok)
	assert.Empty(t, m.History())
	// Stored alerts survive a session reset; cooldowns do not.
	assert.Equal(t, 1, m.Alerts().Len())

	_, alerts = m.ProcessReading(ctx, reading)
	assert.Len(t, alerts, 1)
}

func TestMonitor_ScoreTimestampFollowsReading(t *testing.T) {
	m := newTestMonitor()
	defer m.Close()

	score, _ := m.ProcessReading(context.Background(), nominalReading(baseTimestamp+777))
	assert.Equal(t, baseTimestamp+777, score.Timestamp)
}
