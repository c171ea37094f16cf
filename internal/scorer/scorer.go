// Package scorer derives the four weighted sub-risk scores (temperature,
// pressure, circulation, gait) from a sensor reading and the recent history
// window, and fuses them into an overall risk score with a severity tier,
// ranked contributing factors and recommendations.
package scorer

import (
	"math"

	"footsense-monitor/internal/models"
)

// Sub-score weights for the overall score fusion.
const (
	weightTemperature = 0.30
	weightPressure    = 0.35
	weightCirculation = 0.20
	weightGait        = 0.15
)

// Scorer computes risk scores. It holds no mutable state; Score is a pure
// function of its inputs, so a single Scorer can serve any number of
// sessions and tests can run in parallel.
type Scorer struct {
	thresholds models.Thresholds
}

// NewScorer creates a scorer with the given thresholds.
func NewScorer(thresholds models.Thresholds) *Scorer {
	return &Scorer{thresholds: thresholds}
}

// Score computes the risk score for one reading. history is the monitoring
// window in chronological order and is expected to already contain the
// reading as its last entry; trend helpers look back from there. Every
// helper treats insufficient history as "no signal", never an error, so a
// first-ever reading scores on its instantaneous values alone.
func (s *Scorer) Score(reading models.SensorReading, history []models.SensorReading) models.RiskScore {
	tempScore, tempFactors := s.temperatureRisk(reading, history)
	pressureScore, pressureFactors := s.pressureRisk(reading, history)
	circulationScore, circulationFactors := s.circulationRisk(reading, history)
	gaitScore, gaitFactors := s.gaitRisk(reading, history)

	// Each sub-score is clamped independently before weighting. The clamp
	// order is behavioral: a saturated sub-score contributes at most its
	// weight times 100 regardless of how far past the limit it ran.
	overall := clampScore(int(math.Round(
		weightTemperature*float64(tempScore) +
			weightPressure*float64(pressureScore) +
			weightCirculation*float64(circulationScore) +
			weightGait*float64(gaitScore))))

	factors := make([]string, 0, maxFactors)
	factors = append(factors, tempFactors...)
	factors = append(factors, pressureFactors...)
	factors = append(factors, circulationFactors...)
	factors = append(factors, gaitFactors...)
	factors = rankFactors(factors)

	severity := models.SeverityForScore(overall)

	return models.RiskScore{
		OverallScore:     overall,
		Severity:         severity,
		TemperatureScore: tempScore,
		PressureScore:    pressureScore,
		CirculationScore: circulationScore,
		GaitScore:        gaitScore,
		Factors:          factors,
		Recommendations:  s.recommendations(severity, tempScore, pressureScore, circulationScore, gaitScore),
		Timestamp:        reading.Timestamp,
	}
}

// tail returns the last n entries of history (all of it when shorter).
func tail(history []models.SensorReading, n int) []models.SensorReading {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// averageTemperature is the mean of the four zone temperatures.
func averageTemperature(r models.SensorReading) float64 {
	var sum float64
	for _, t := range r.ZoneTemperatures {
		sum += t
	}
	return sum / models.ZoneCount
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
