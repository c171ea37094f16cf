package scorer

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// Penalties for the circulation sub-score.
const (
	penaltySpO2Critical    = 50
	penaltySpO2Low         = 35
	penaltySpO2Warning     = 20
	penaltySpO2BelowNormal = 10
	penaltyHRCritical      = 30
	penaltyHRWarning       = 15
	penaltyHROutsideIdeal  = 5
	penaltySpO2DropTrend   = 15
)

const (
	spO2TrendLookback = 5
	spO2TrendMinDrops = 3
)

// circulationRisk scores blood oxygen and heart rate. Zero values mean the
// sensor has not produced a sample yet and carry no penalty.
func (s *Scorer) circulationRisk(reading models.SensorReading, history []models.SensorReading) (int, []string) {
	th := s.thresholds
	score := 0

	if reading.SpO2 > 0 {
		switch {
		case reading.SpO2 < th.SpO2Critical:
			score += penaltySpO2Critical
		case reading.SpO2 < th.SpO2Low:
			score += penaltySpO2Low
		case reading.SpO2 < th.SpO2Warning:
			score += penaltySpO2Warning
		case reading.SpO2 < th.SpO2Normal:
			score += penaltySpO2BelowNormal
		}
	}

	if hr := reading.HeartRate; hr > 0 {
		switch {
		case hr < th.HeartRateCriticalLow || hr > th.HeartRateCriticalHigh:
			score += penaltyHRCritical
		case hr < th.HeartRateWarningLow || hr > th.HeartRateWarningHigh:
			score += penaltyHRWarning
		case hr < th.HeartRateIdealLow || hr > th.HeartRateIdealHigh:
			score += penaltyHROutsideIdeal
		}
	}

	if spO2Dropping(history) {
		score += penaltySpO2DropTrend
	}

	var factors []string
	if reading.SpO2 > 0 {
		switch {
		case reading.SpO2 < th.SpO2Critical:
			factors = append(factors, fmt.Sprintf("Critically low blood oxygen: %.0f%%", reading.SpO2))
		case reading.SpO2 < th.SpO2Warning:
			factors = append(factors, fmt.Sprintf("Low blood oxygen: %.0f%%", reading.SpO2))
		case reading.SpO2 < th.SpO2Normal:
			factors = append(factors, fmt.Sprintf("Blood oxygen below normal: %.0f%%", reading.SpO2))
		}
	}
	if hr := reading.HeartRate; hr > 0 {
		switch {
		case hr < th.HeartRateCriticalLow || hr > th.HeartRateCriticalHigh:
			factors = append(factors, fmt.Sprintf("Critical heart rate: %d BPM", hr))
		case hr < th.HeartRateWarningLow || hr > th.HeartRateWarningHigh:
			factors = append(factors, fmt.Sprintf("Abnormal heart rate: %d BPM", hr))
		}
	}

	return clampScore(score), factors
}

// spO2Dropping reports whether SpO2 strictly decreased between consecutive
// readings at least spO2TrendMinDrops times within the last
// spO2TrendLookback entries.
func spO2Dropping(history []models.SensorReading) bool {
	win := tail(history, spO2TrendLookback)
	drops := 0
	for i := 1; i < len(win); i++ {
		if win[i].SpO2 > 0 && win[i-1].SpO2 > 0 && win[i].SpO2 < win[i-1].SpO2 {
			drops++
		}
	}
	return drops >= spO2TrendMinDrops
}
