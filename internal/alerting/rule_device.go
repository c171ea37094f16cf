package alerting

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// deviceRules covers device health: currently the battery level.
func (e *Engine) deviceRules(r models.SensorReading) []firing {
	th := e.thresholds
	if r.BatteryLevel > th.BatteryLow {
		return nil
	}

	severity := models.SeverityWarning
	if r.BatteryLevel <= th.BatteryCritical {
		severity = models.SeverityCritical
	}
	return []firing{{
		key: ruleKey{kind: ruleLowBattery, zone: noZone},
		alert: models.Alert{
			Type:      models.AlertBattery,
			Severity:  severity,
			Title:     "Low Battery",
			Message:   fmt.Sprintf("Device battery is at %.0f%%", r.BatteryLevel),
			Value:     floatPtr(r.BatteryLevel),
			Threshold: floatPtr(th.BatteryLow),
			Action:    "Charge the monitoring device",
		},
	}}
}
