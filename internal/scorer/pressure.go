package scorer

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// Penalties for the pressure sub-score.
const (
	penaltyPressureCritical  = 35
	penaltyPressureHigh      = 25
	penaltyPressureWarning   = 15
	penaltyUnevenSevere      = 20
	penaltyUnevenMild        = 10
	penaltySustainedPressure = 20
	penaltyPressureSpike     = 15
)

const (
	sustainedLookback = 5
	sustainedMinCount = 4
)

// Evenness breakpoints for the distribution penalty.
const (
	evennessSevere = 0.5
	evennessMild   = 0.7
)

// pressureRisk scores the zone pressures: per-zone threshold penalties, a
// distribution penalty when load is concentrated on few zones, sustained
// high pressure across recent readings, and sudden per-zone spikes.
func (s *Scorer) pressureRisk(reading models.SensorReading, history []models.SensorReading) (int, []string) {
	th := s.thresholds
	score := 0

	for _, p := range reading.ZonePressures {
		switch {
		case p > th.PressureCritical:
			score += penaltyPressureCritical
		case p > th.PressureHigh:
			score += penaltyPressureHigh
		case p > th.PressureWarning:
			score += penaltyPressureWarning
		}
	}

	evenness, hasEvenness := pressureEvenness(reading)
	if hasEvenness {
		if evenness < evennessSevere {
			score += penaltyUnevenSevere
		} else if evenness < evennessMild {
			score += penaltyUnevenMild
		}
	}

	if sustainedHighPressure(history, th.PressureWarning) {
		score += penaltySustainedPressure
	}

	if pressureSpiked(reading, history, th.PressureSpike) {
		score += penaltyPressureSpike
	}

	var factors []string
	maxPressure, maxZone := reading.MaxZonePressure()
	switch {
	case maxPressure > th.PressureCritical:
		factors = append(factors, fmt.Sprintf("Dangerous pressure on %s zone: %.0f kPa", models.ZoneNames[maxZone], maxPressure))
	case maxPressure > th.PressureWarning:
		factors = append(factors, fmt.Sprintf("High pressure on %s zone: %.0f kPa", models.ZoneNames[maxZone], maxPressure))
	}
	if hasEvenness && evenness < evennessMild {
		factors = append(factors, "Uneven pressure distribution across the foot")
	}

	return clampScore(score), factors
}

// pressureEvenness scores how evenly load is spread over the four zones as
// 1 − normalizedVariance, where normalizedVariance is the population
// variance of the zone pressures divided by the squared mean, clamped to
// [0,1]. The second return is false when the mean is zero (no load, no
// signal).
func pressureEvenness(r models.SensorReading) (float64, bool) {
	var sum float64
	for _, p := range r.ZonePressures {
		sum += p
	}
	mean := sum / models.ZoneCount
	if mean <= 0 {
		return 0, false
	}

	var variance float64
	for _, p := range r.ZonePressures {
		d := p - mean
		variance += d * d
	}
	variance /= models.ZoneCount

	normalized := clamp01(variance / (mean * mean))
	return 1 - normalized, true
}

// sustainedHighPressure reports whether at least sustainedMinCount of the
// last sustainedLookback readings had their peak zone pressure above the
// warning threshold.
func sustainedHighPressure(history []models.SensorReading, warning float64) bool {
	win := tail(history, sustainedLookback)
	count := 0
	for _, r := range win {
		if max, _ := r.MaxZonePressure(); max > warning {
			count++
		}
	}
	return count >= sustainedMinCount
}

// pressureSpiked reports whether any zone's pressure rose by more than the
// spike threshold versus the immediately preceding reading. With no
// preceding reading there is no signal.
func pressureSpiked(reading models.SensorReading, history []models.SensorReading, spike float64) bool {
	if len(history) < 2 {
		return false
	}
	prev := history[len(history)-2]
	for i := 0; i < models.ZoneCount; i++ {
		if reading.ZonePressures[i]-prev.ZonePressures[i] > spike {
			return true
		}
	}
	return false
}
