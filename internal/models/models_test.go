package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityForScore_Breakpoints(t *testing.T) {
	tests := []struct {
		score    int
		expected RiskSeverity
	}{
		{0, RiskLow},
		{30, RiskLow},
		{31, RiskModerate},
		{50, RiskModerate},
		{51, RiskHigh},
		{70, RiskHigh},
		{71, RiskCritical},
		{100, RiskCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SeverityForScore(tt.score), "score %d", tt.score)
	}
}

func TestSeverityForScore_Monotonic(t *testing.T) {
	rank := map[RiskSeverity]int{
		RiskLow:      0,
		RiskModerate: 1,
		RiskHigh:     2,
		RiskCritical: 3,
	}

	prev := SeverityForScore(0)
	for score := 1; score <= 100; score++ {
		cur := SeverityForScore(score)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "severity must not decrease at score %d", score)
		prev = cur
	}
}

func TestRiskScore_WithID(t *testing.T) {
	score := RiskScore{OverallScore: 42, Severity: RiskModerate}

	withID := score.WithID("score-1")

	assert.Equal(t, "score-1", withID.ID)
	assert.Equal(t, 42, withID.OverallScore)
	// Original untouched.
	assert.Equal(t, "", score.ID)
}

func TestSensorReading_ZoneExtremes(t *testing.T) {
	r := SensorReading{
		ZoneTemperatures: [ZoneCount]float64{32, 38, 30, 33},
		ZonePressures:    [ZoneCount]float64{40, 45, 120, 38},
	}

	maxTemp, maxTempZone := r.MaxZoneTemperature()
	assert.Equal(t, 38.0, maxTemp)
	assert.Equal(t, ZoneBall, maxTempZone)

	minTemp, minTempZone := r.MinZoneTemperature()
	assert.Equal(t, 30.0, minTemp)
	assert.Equal(t, ZoneArch, minTempZone)

	maxPressure, maxPressureZone := r.MaxZonePressure()
	assert.Equal(t, 120.0, maxPressure)
	assert.Equal(t, ZoneArch, maxPressureZone)
}

func TestAlert_SerializationContract(t *testing.T) {
	value := 38.5
	threshold := 35.0
	alert := Alert{
		ID:        "alert-1",
		Type:      AlertTemperature,
		Severity:  SeverityCritical,
		Title:     "High Temperature",
		Message:   "Toe temperature is 38.5°C",
		Zone:      "Toe",
		Value:     &value,
		Threshold: &threshold,
		Timestamp: 1700000000000,
	}

	data, err := json.Marshal(alert)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "temperature", decoded["type"])
	assert.Equal(t, "critical", decoded["severity"])
	assert.Equal(t, "Toe", decoded["zone"])
	assert.Equal(t, float64(1700000000000), decoded["timestamp"])
	assert.Equal(t, false, decoded["read"])
}

func TestAlert_OptionalFieldsOmitted(t *testing.T) {
	alert := Alert{
		ID:       "alert-1",
		Type:     AlertBattery,
		Severity: SeverityWarning,
	}

	data, err := json.Marshal(alert)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, hasZone := decoded["zone"]
	_, hasValue := decoded["value"]
	_, hasAction := decoded["action"]
	assert.False(t, hasZone)
	assert.False(t, hasValue)
	assert.False(t, hasAction)
}

func TestActivity_Valid(t *testing.T) {
	assert.True(t, ActivityWalking.Valid())
	assert.True(t, ActivityUnknown.Valid())
	assert.False(t, Activity("jogging").Valid())
	assert.False(t, Activity("").Valid())
}
