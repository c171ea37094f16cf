// Package alerting evaluates each sensor reading against a fixed set of
// independent threshold rules, producing severity-classified alerts with a
// per-rule cooldown so a persistently exceeded threshold cannot storm the
// wearer with notifications. It also owns the bounded in-memory alert store
// and the broadcast channel observers subscribe to.
package alerting

import (
	"time"

	"footsense-monitor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCooldown is the reference minimum interval between two firings of
// the same rule key.
const DefaultCooldown = 5 * time.Minute

// Engine evaluates alert rules. It is not internally locked; the owning
// session serializes Evaluate with every other mutation of shared state.
type Engine struct {
	thresholds models.Thresholds
	cooldownMs int64
	lastFired  map[ruleKey]int64 // rule key -> reading timestamp of last firing
	logger     *zap.Logger
}

// NewEngine creates an alert engine. Non-positive cooldowns fall back to
// DefaultCooldown.
func NewEngine(thresholds models.Thresholds, cooldown time.Duration, logger *zap.Logger) *Engine {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Engine{
		thresholds: thresholds,
		cooldownMs: cooldown.Milliseconds(),
		lastFired:  make(map[ruleKey]int64),
		logger:     logger,
	}
}

// firing is a rule match before cooldown filtering. The engine stamps the
// identifier and timestamp on the alerts that survive.
type firing struct {
	key   ruleKey
	alert models.Alert
}

// Evaluate runs every rule against the reading, suppresses the ones still
// in cooldown, and returns the alerts that fired. Cooldown is measured
// against reading timestamps, not the wall clock, so replayed or synthetic
// sessions behave deterministically.
func (e *Engine) Evaluate(reading models.SensorReading, history []models.SensorReading) []models.Alert {
	var matched []firing
	matched = append(matched, e.temperatureRules(reading)...)
	matched = append(matched, e.pressureRules(reading, history)...)
	matched = append(matched, e.vitalsRules(reading)...)
	matched = append(matched, e.gaitRules(reading)...)
	matched = append(matched, e.deviceRules(reading)...)

	var alerts []models.Alert
	for _, f := range matched {
		if last, ok := e.lastFired[f.key]; ok && reading.Timestamp-last < e.cooldownMs {
			continue
		}
		e.lastFired[f.key] = reading.Timestamp

		alert := f.alert
		alert.ID = uuid.New().String()
		alert.Timestamp = reading.Timestamp
		alerts = append(alerts, alert)

		e.logger.Info("Alert triggered",
			zap.String("alert_id", alert.ID),
			zap.String("type", string(alert.Type)),
			zap.String("severity", string(alert.Severity)),
			zap.String("zone", alert.Zone),
		)
	}
	return alerts
}

// ResetCooldowns forgets all cooldown state. Intended for tests and for
// starting a fresh monitoring session on the same engine.
func (e *Engine) ResetCooldowns() {
	e.lastFired = make(map[ruleKey]int64)
}
