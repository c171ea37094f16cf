package scorer

import (
	"fmt"
	"math"

	"footsense-monitor/internal/models"
)

// Penalties for the gait sub-score.
const (
	penaltyStabilityLow  = 40
	penaltyStabilityMild = 25
	penaltyGaitChange    = 20
	penaltyStepFrequency = 15
)

// Stability breakpoints in [0,1].
const (
	StabilityLow  = 0.5
	StabilityMild = 0.7
)

// Step frequency band for walking, steps per minute. 20 beyond the normal
// 80 to 130 band on either side.
const (
	stepFrequencyMin = 60
	stepFrequencyMax = 150
)

const (
	gravity          = 9.8
	maxDeviationRun  = 15.0
	maxDeviationWalk = 8.0
	stepLookback     = 10
)

// gaitRisk scores movement stability, sudden activity changes and walking
// cadence. A resting or sitting wearer has no gait to score.
func (s *Scorer) gaitRisk(reading models.SensorReading, history []models.SensorReading) (int, []string) {
	if reading.Activity == models.ActivityResting || reading.Activity == models.ActivitySitting {
		return 0, nil
	}

	score := 0
	var factors []string

	// A zero acceleration vector means the IMU has not produced a sample
	// yet, same convention as the zero SpO2 and heart-rate guards.
	if reading.Acceleration != (models.Vector3{}) {
		stability := GaitStability(reading)
		if stability < StabilityLow {
			score += penaltyStabilityLow
			factors = append(factors, "Critical gait instability detected")
		} else if stability < StabilityMild {
			score += penaltyStabilityMild
			factors = append(factors, "Unstable gait detected")
		}
	}

	if suddenGaitChange(history) {
		score += penaltyGaitChange
		factors = append(factors, "Sudden change in movement pattern")
	}

	if reading.Activity == models.ActivityWalking {
		if freq := stepFrequency(tail(history, stepLookback)); freq > 0 &&
			(freq < stepFrequencyMin || freq > stepFrequencyMax) {
			score += penaltyStepFrequency
			factors = append(factors, fmt.Sprintf("Irregular walking cadence: %.0f steps/min", freq))
		}
	}

	return clampScore(score), factors
}

// GaitStability scores movement steadiness in [0,1]: the summed deviation
// of the accelerometer axes from the at-rest gravity vector, normalized by
// the deviation expected for the activity. Exported because the alert
// engine evaluates the same signal.
func GaitStability(r models.SensorReading) float64 {
	maxDeviation := maxDeviationWalk
	if r.Activity == models.ActivityRunning {
		maxDeviation = maxDeviationRun
	}
	deviation := math.Abs(r.Acceleration.X) +
		math.Abs(r.Acceleration.Y) +
		math.Abs(r.Acceleration.Z-gravity)
	return clamp01(1 - deviation/maxDeviation)
}

// suddenGaitChange detects an A-B-A' flip in the activity classification:
// the reading three back differs from the one back, and the one between
// differs from both. Needs four readings of history (the current one plus
// three of lookback).
func suddenGaitChange(history []models.SensorReading) bool {
	n := len(history)
	if n < 4 {
		return false
	}
	oneBack := history[n-2].Activity
	twoBack := history[n-3].Activity
	threeBack := history[n-4].Activity
	return threeBack != oneBack && twoBack != threeBack && twoBack != oneBack
}

// stepFrequency estimates steps per minute from the cumulative step counter
// across the given window. No steps, a single reading or a non-positive
// time delta all mean no signal (0).
func stepFrequency(win []models.SensorReading) float64 {
	if len(win) < 2 {
		return 0
	}
	first, last := win[0], win[len(win)-1]
	steps := last.StepCount - first.StepCount
	deltaMs := last.Timestamp - first.Timestamp
	if steps <= 0 || deltaMs <= 0 {
		return 0
	}
	return float64(steps) / (float64(deltaMs) / 60000.0)
}
