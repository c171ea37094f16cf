package alerting

import (
	"fmt"

	"footsense-monitor/internal/models"
	"footsense-monitor/internal/scorer"
)

// gaitStabilityCritical is the stability below which an instability alert
// escalates to critical.
const gaitStabilityCritical = 0.3

// gaitRules raises an instability alert when the wearer is moving and the
// accelerometer-derived stability collapses. Resting and sitting wearers
// have no gait to evaluate.
func (e *Engine) gaitRules(r models.SensorReading) []firing {
	if r.Activity == models.ActivityResting || r.Activity == models.ActivitySitting {
		return nil
	}
	// Zero acceleration vector means no IMU sample yet.
	if r.Acceleration == (models.Vector3{}) {
		return nil
	}

	stability := scorer.GaitStability(r)
	if stability >= scorer.StabilityLow {
		return nil
	}

	severity := models.SeverityWarning
	if stability < gaitStabilityCritical {
		severity = models.SeverityCritical
	}
	return []firing{{
		key: ruleKey{kind: ruleGaitInstability, zone: noZone},
		alert: models.Alert{
			Type:      models.AlertGait,
			Severity:  severity,
			Title:     "Unstable Gait",
			Message:   fmt.Sprintf("Movement stability dropped to %.0f%% while %s", stability*100, r.Activity),
			Value:     floatPtr(stability),
			Threshold: floatPtr(scorer.StabilityLow),
			Action:    "Stop and steady yourself; use support if available",
		},
	}}
}
