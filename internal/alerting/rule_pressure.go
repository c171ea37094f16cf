package alerting

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// pressureRules checks each zone against the high-pressure threshold and,
// when a previous reading exists, against the per-reading spike limit.
func (e *Engine) pressureRules(r models.SensorReading, history []models.SensorReading) []firing {
	th := e.thresholds
	var matched []firing

	for i, p := range r.ZonePressures {
		if p > th.PressureWarning {
			severity := models.SeverityWarning
			if p > th.PressureCritical {
				severity = models.SeverityCritical
			}
			matched = append(matched, firing{
				key: ruleKey{kind: rulePressureHigh, zone: i},
				alert: models.Alert{
					Type:      models.AlertPressure,
					Severity:  severity,
					Title:     "High Pressure",
					Message:   fmt.Sprintf("%s pressure is %.0f kPa, above the %.0f kPa limit", models.ZoneNames[i], p, th.PressureWarning),
					Zone:      models.ZoneNames[i],
					Value:     floatPtr(p),
					Threshold: floatPtr(th.PressureWarning),
					Action:    "Shift your weight or adjust footwear to relieve the area",
				},
			})
		}
	}

	if len(history) >= 2 {
		prev := history[len(history)-2]
		for i := 0; i < models.ZoneCount; i++ {
			delta := r.ZonePressures[i] - prev.ZonePressures[i]
			if delta > th.PressureSpike {
				matched = append(matched, firing{
					key: ruleKey{kind: rulePressureSpike, zone: i},
					alert: models.Alert{
						Type:      models.AlertPressure,
						Severity:  models.SeverityWarning,
						Title:     "Pressure Spike",
						Message:   fmt.Sprintf("%s pressure jumped by %.0f kPa since the previous reading", models.ZoneNames[i], delta),
						Zone:      models.ZoneNames[i],
						Value:     floatPtr(delta),
						Threshold: floatPtr(th.PressureSpike),
						Action:    "Check your footing and footwear for a sudden pressure point",
					},
				})
			}
		}
	}

	return matched
}
