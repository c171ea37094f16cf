package models

// ZoneCount is the number of instrumented foot zones.
const ZoneCount = 4

// Zone indices into the fixed-length zone arrays.
const (
	ZoneHeel = 0
	ZoneBall = 1
	ZoneArch = 2
	ZoneToe  = 3
)

// ZoneNames maps zone index to display name. The order is fixed by the
// device firmware and significant everywhere zone arrays appear.
var ZoneNames = [ZoneCount]string{"Heel", "Ball", "Arch", "Toe"}

// Activity is the device's activity classification for a reading.
type Activity string

const (
	ActivityResting  Activity = "resting"
	ActivitySitting  Activity = "sitting"
	ActivityStanding Activity = "standing"
	ActivityWalking  Activity = "walking"
	ActivityRunning  Activity = "running"
	ActivityUnknown  Activity = "unknown"
)

// Valid reports whether a is one of the closed activity values.
func (a Activity) Valid() bool {
	switch a {
	case ActivityResting, ActivitySitting, ActivityStanding,
		ActivityWalking, ActivityRunning, ActivityUnknown:
		return true
	}
	return false
}

// Vector3 is a 3-axis sensor sample.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SensorReading is one validated sample from the wearable. Zone arrays are
// always exactly ZoneCount long (enforced by the array type); index i maps to
// ZoneNames[i]. The engine never mutates a reading after it is created.
type SensorReading struct {
	Timestamp        int64              `json:"timestamp"` // epoch milliseconds
	ZoneTemperatures [ZoneCount]float64 `json:"zone_temperatures"`
	ZonePressures    [ZoneCount]float64 `json:"zone_pressures"`
	SpO2             float64            `json:"spo2"`
	HeartRate        int                `json:"heart_rate"`
	Acceleration     Vector3            `json:"acceleration"`      // m/s²
	AngularVelocity  Vector3            `json:"angular_velocity"`  // deg/s
	StepCount        int64              `json:"step_count"`        // cumulative within session
	BatteryLevel     float64            `json:"battery_level"`     // 0-100
	Activity         Activity           `json:"activity"`
}

// MaxZoneTemperature returns the hottest zone's temperature and its index.
func (r SensorReading) MaxZoneTemperature() (float64, int) {
	max, idx := r.ZoneTemperatures[0], 0
	for i := 1; i < ZoneCount; i++ {
		if r.ZoneTemperatures[i] > max {
			max, idx = r.ZoneTemperatures[i], i
		}
	}
	return max, idx
}

// MinZoneTemperature returns the coldest zone's temperature and its index.
func (r SensorReading) MinZoneTemperature() (float64, int) {
	min, idx := r.ZoneTemperatures[0], 0
	for i := 1; i < ZoneCount; i++ {
		if r.ZoneTemperatures[i] < min {
			min, idx = r.ZoneTemperatures[i], i
		}
	}
	return min, idx
}

// MaxZonePressure returns the highest zone pressure and its index.
func (r SensorReading) MaxZonePressure() (float64, int) {
	max, idx := r.ZonePressures[0], 0
	for i := 1; i < ZoneCount; i++ {
		if r.ZonePressures[i] > max {
			max, idx = r.ZonePressures[i], i
		}
	}
	return max, idx
}
