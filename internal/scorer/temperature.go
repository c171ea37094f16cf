package scorer

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// Penalties for the temperature sub-score.
const (
	penaltyTempCriticalHigh = 30
	penaltyTempWarningHigh  = 20
	penaltyTempCriticalLow  = 25
	penaltyTempWarningLow   = 15
	penaltyAsymmetryCrit    = 25
	penaltyAsymmetryWarn    = 15
	penaltyTempRate         = 15
)

// tempRateLookback is how many recent readings the rate-of-change check
// spans.
const tempRateLookback = 5

// temperatureRisk scores the zone temperatures: per-zone threshold
// penalties, inter-zone asymmetry and the short-term warming trend.
// Zero-valued zones are treated as uninitialized sensors and carry no
// low-temperature penalty.
func (s *Scorer) temperatureRisk(reading models.SensorReading, history []models.SensorReading) (int, []string) {
	th := s.thresholds
	score := 0

	for _, t := range reading.ZoneTemperatures {
		switch {
		case t > th.TempCriticalHigh:
			score += penaltyTempCriticalHigh
		case t > th.TempWarningHigh:
			score += penaltyTempWarningHigh
		case t > 0 && t < th.TempCriticalLow:
			score += penaltyTempCriticalLow
		case t > 0 && t < th.TempWarningLow:
			score += penaltyTempWarningLow
		}
	}

	maxTemp, maxZone := reading.MaxZoneTemperature()
	minTemp, minZone := reading.MinZoneTemperature()
	spread := maxTemp - minTemp
	if spread > th.AsymmetryCritical {
		score += penaltyAsymmetryCrit
	} else if spread > th.AsymmetryWarning {
		score += penaltyAsymmetryWarn
	}

	if averageTempRatePerHour(history) > th.TempRateWarning {
		score += penaltyTempRate
	}

	var factors []string
	switch {
	case maxTemp > th.TempCriticalHigh:
		factors = append(factors, fmt.Sprintf("Critical temperature in %s zone: %.1f°C", models.ZoneNames[maxZone], maxTemp))
	case maxTemp > th.TempWarningHigh:
		factors = append(factors, fmt.Sprintf("Elevated temperature in %s zone: %.1f°C", models.ZoneNames[maxZone], maxTemp))
	}
	if minTemp > 0 && minTemp < th.TempWarningLow {
		factors = append(factors, fmt.Sprintf("Low temperature in %s zone: %.1f°C", models.ZoneNames[minZone], minTemp))
	}
	if spread > th.AsymmetryWarning {
		factors = append(factors, fmt.Sprintf("Temperature asymmetry across zones: %.1f°C", spread))
	}

	return clampScore(score), factors
}

// averageTempRatePerHour is the rise of the mean zone temperature across
// the last tempRateLookback readings, converted to °C per hour using the
// reading timestamps. Fewer than two readings, or a non-positive time
// delta, means no signal (0).
func averageTempRatePerHour(history []models.SensorReading) float64 {
	win := tail(history, tempRateLookback)
	if len(win) < 2 {
		return 0
	}
	first, last := win[0], win[len(win)-1]
	deltaMs := last.Timestamp - first.Timestamp
	if deltaMs <= 0 {
		return 0
	}
	deltaTemp := averageTemperature(last) - averageTemperature(first)
	return deltaTemp / (float64(deltaMs) / 3600000.0)
}
