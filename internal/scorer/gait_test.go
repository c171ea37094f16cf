package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"footsense-monitor/internal/models"
)

func TestGaitRisk_RestingHasNoGait(t *testing.T) {
	s := newTestScorer()
	reading := nominalReading(baseTimestamp)
	reading.Activity = models.ActivityResting
	// Wildly unstable accelerometer, but the wearer is not moving.
	reading.Acceleration = models.Vector3{X: 8, Y: 8, Z: 1}

	score, factors := s.gaitRisk(reading, []models.SensorReading{reading})

	assert.Equal(t, 0, score)
	assert.Empty(t, factors)

	reading.Activity = models.ActivitySitting
	score, _ = s.gaitRisk(reading, []models.SensorReading{reading})
	assert.Equal(t, 0, score)
}

func TestGaitRisk_StableWalkIsZero(t *testing.T) {
	s := newTestScorer()
	reading := nominalReading(baseTimestamp)
	reading.Activity = models.ActivityWalking

	score, factors := s.gaitRisk(reading, []models.SensorReading{reading})

	assert.Equal(t, 0, score)
	assert.Empty(t, factors)
}

func TestGaitRisk_CriticalInstabilityWalking(t *testing.T) {
	s := newTestScorer()
	reading := nominalReading(baseTimestamp)
	reading.Activity = models.ActivityWalking
	// Deviation 6 of a walking budget of 8: stability 0.25.
	reading.Acceleration = models.Vector3{X: 3, Y: 3, Z: 9.8}

	score, factors := s.gaitRisk(reading, []models.SensorReading{reading})

	assert.Equal(t, penaltyStabilityLow, score)
	assert.Contains(t, factors, "Critical gait instability detected")
}

func TestGaitRisk_MildInstabilityRunning(t *testing.T) {
	s := newTestScorer()
	reading := nominalReading(baseTimestamp)
	reading.Activity = models.ActivityRunning
	// Same deviation 6 of a running budget of 15: stability 0.6, only mild.
	reading.Acceleration = models.Vector3{X: 3, Y: 3, Z: 9.8}

	score, factors := s.gaitRisk(reading, []models.SensorReading{reading})

	assert.Equal(t, penaltyStabilityMild, score)
	assert.Contains(t, factors, "Unstable gait detected")
}

func TestGaitRisk_ZeroAccelerationIsNoSignal(t *testing.T) {
	s := newTestScorer()
	reading := nominalReading(baseTimestamp)
	reading.Activity = models.ActivityWalking
	reading.Acceleration = models.Vector3{}

	score, factors := s.gaitRisk(reading, []models.SensorReading{reading})

	assert.Equal(t, 0, score)
	assert.Empty(t, factors)
}

func TestGaitRisk_SuddenActivityChange(t *testing.T) {
	s := newTestScorer()
	activities := []models.Activity{
		models.ActivityWalking, models.ActivityResting,
		models.ActivityStanding, models.ActivityWalking,
	}
	var history []models.SensorReading
	for i, a := range activities {
		r := nominalReading(baseTimestamp + int64(i)*2000)
		r.Activity = a
		history = append(history, r)
	}

	score, factors := s.gaitRisk(history[len(history)-1], history)

	assert.Equal(t, penaltyGaitChange, score)
	assert.Contains(t, factors, "Sudden change in movement pattern")
}

func TestGaitRisk_SteadyActivityIsNoChange(t *testing.T) {
	var history []models.SensorReading
	for i := 0; i < 6; i++ {
		r := nominalReading(baseTimestamp + int64(i)*2000)
		r.Activity = models.ActivityWalking
		history = append(history, r)
	}

	assert.False(t, suddenGaitChange(history))
	assert.False(t, suddenGaitChange(history[:3])) // not enough lookback
}

func TestGaitRisk_SlowCadence(t *testing.T) {
	s := newTestScorer()
	// 9 steps over 18 seconds: 30 steps/min, well under the walking band.
	var history []models.SensorReading
	for i := 0; i < 10; i++ {
		r := nominalReading(baseTimestamp + int64(i)*2000)
		r.Activity = models.ActivityWalking
		r.StepCount = int64(i)
		history = append(history, r)
	}

	score, factors := s.gaitRisk(history[len(history)-1], history)

	assert.Equal(t, penaltyStepFrequency, score)
	assert.Contains(t, factors, "Irregular walking cadence: 30 steps/min")
}

func TestGaitRisk_NormalCadence(t *testing.T) {
	s := newTestScorer()
	// 45 steps over 27 seconds: 100 steps/min, inside the walking band.
	var history []models.SensorReading
	for i := 0; i < 10; i++ {
		r := nominalReading(baseTimestamp + int64(i)*3000)
		r.Activity = models.ActivityWalking
		r.StepCount = int64(i * 5)
		history = append(history, r)
	}

	score, _ := s.gaitRisk(history[len(history)-1], history)

	assert.Equal(t, 0, score)
}

func TestGaitRisk_CadenceIgnoredUnlessWalking(t *testing.T) {
	s := newTestScorer()
	// Same slow cadence, but the wearer is standing; the band only applies
	// to walking.
	var history []models.SensorReading
	for i := 0; i < 10; i++ {
		r := nominalReading(baseTimestamp + int64(i)*2000)
		r.Activity = models.ActivityStanding
		r.StepCount = int64(i)
		history = append(history, r)
	}

	score, _ := s.gaitRisk(history[len(history)-1], history)

	assert.Equal(t, 0, score)
}

func TestGaitStability(t *testing.T) {
	atRest := nominalReading(baseTimestamp)
	assert.InDelta(t, 1.0, GaitStability(atRest), 1e-9)

	shaky := nominalReading(baseTimestamp)
	shaky.Activity = models.ActivityWalking
	shaky.Acceleration = models.Vector3{X: 4, Y: 4, Z: 9.8}
	assert.InDelta(t, 0.0, GaitStability(shaky), 1e-9)

	// The running budget is wider, so the same deviation scores higher.
	shaky.Activity = models.ActivityRunning
	assert.Greater(t, GaitStability(shaky), 0.0)
}

func TestStepFrequency_NoSignalCases(t *testing.T) {
	single := []models.SensorReading{nominalReading(baseTimestamp)}
	assert.Equal(t, 0.0, stepFrequency(single))

	noSteps := []models.SensorReading{
		nominalReading(baseTimestamp),
		nominalReading(baseTimestamp + 2000),
	}
	assert.Equal(t, 0.0, stepFrequency(noSteps))

	sameInstant := noSteps
	sameInstant[1].StepCount = 10
	sameInstant[1].Timestamp = baseTimestamp
	assert.Equal(t, 0.0, stepFrequency(sameInstant))
}
