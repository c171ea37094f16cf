// Package ingest is the engine's input boundary: it parses the versioned
// wire payload delivered by the acquisition gateway into a validated
// reading, and hosts the MQTT consumer that feeds the monitor.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"footsense-monitor/internal/models"
)

// ErrInvalidReading marks a payload the validation boundary rejected.
// Malformed input fails fast here instead of propagating into scoring math.
var ErrInvalidReading = errors.New("invalid sensor reading")

// SchemaVersion is the highest wire-format version this parser accepts.
// Payloads without a version field are treated as version 1.
const SchemaVersion = 1

// wireReading is the explicit wire schema. Field names are the stable
// serialization contract with the device gateway; no alternate key names
// are guessed at runtime.
type wireReading struct {
	SchemaVersion    int             `json:"schema_version"`
	Timestamp        int64           `json:"timestamp"` // epoch milliseconds
	ZoneTemperatures []float64       `json:"zone_temperatures"`
	ZonePressures    []float64       `json:"zone_pressures"`
	SpO2             float64         `json:"spo2"`
	HeartRate        int             `json:"heart_rate"`
	Acceleration     *models.Vector3 `json:"acceleration"`
	AngularVelocity  *models.Vector3 `json:"angular_velocity"`
	StepCount        int64           `json:"step_count"`
	BatteryLevel     *float64        `json:"battery_level"`
	Activity         string          `json:"activity"`
}

// ParseReading parses and normalizes one wire payload. Missing optional
// fields get safe defaults (zero-filled zone arrays, battery 100, activity
// unknown, timestamp now). Structurally wrong payloads are rejected with
// ErrInvalidReading: bad JSON, wrong-length zone arrays, or an unsupported
// schema version.
func ParseReading(payload []byte) (models.SensorReading, error) {
	var w wireReading
	if err := json.Unmarshal(payload, &w); err != nil {
		return models.SensorReading{}, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}

	if w.SchemaVersion > SchemaVersion {
		return models.SensorReading{}, fmt.Errorf("%w: unsupported schema version %d", ErrInvalidReading, w.SchemaVersion)
	}

	temps, err := zoneArray(w.ZoneTemperatures, "zone_temperatures")
	if err != nil {
		return models.SensorReading{}, err
	}
	pressures, err := zoneArray(w.ZonePressures, "zone_pressures")
	if err != nil {
		return models.SensorReading{}, err
	}

	reading := models.SensorReading{
		Timestamp:        w.Timestamp,
		ZoneTemperatures: temps,
		ZonePressures:    pressures,
		SpO2:             w.SpO2,
		HeartRate:        w.HeartRate,
		StepCount:        w.StepCount,
		BatteryLevel:     100,
		Activity:         models.ActivityUnknown,
	}
	if reading.Timestamp <= 0 {
		reading.Timestamp = time.Now().UnixMilli()
	}
	if w.Acceleration != nil {
		reading.Acceleration = *w.Acceleration
	}
	if w.AngularVelocity != nil {
		reading.AngularVelocity = *w.AngularVelocity
	}
	if w.BatteryLevel != nil {
		reading.BatteryLevel = *w.BatteryLevel
	}
	if a := models.Activity(w.Activity); a.Valid() {
		reading.Activity = a
	}

	return reading, nil
}

// zoneArray normalizes a wire zone array: absent means an uninitialized
// sensor bank (all zeros), any other length than ZoneCount is malformed.
func zoneArray(values []float64, field string) ([models.ZoneCount]float64, error) {
	var out [models.ZoneCount]float64
	if values == nil {
		return out, nil
	}
	if len(values) != models.ZoneCount {
		return out, fmt.Errorf("%w: %s must have %d entries, got %d",
			ErrInvalidReading, field, models.ZoneCount, len(values))
	}
	copy(out[:], values)
	return out, nil
}
