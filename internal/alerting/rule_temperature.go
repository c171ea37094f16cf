package alerting

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// temperatureRules checks each zone against the high and low temperature
// thresholds and the foot-wide asymmetry limit. Zero-valued zones are
// uninitialized sensors and never match the low rule.
func (e *Engine) temperatureRules(r models.SensorReading) []firing {
	th := e.thresholds
	var matched []firing

	for i, t := range r.ZoneTemperatures {
		zone := models.ZoneNames[i]
		if t > th.TempWarningHigh {
			severity := models.SeverityWarning
			if t > th.TempCriticalHigh {
				severity = models.SeverityCritical
			}
			matched = append(matched, firing{
				key: ruleKey{kind: ruleTempHigh, zone: i},
				alert: models.Alert{
					Type:      models.AlertTemperature,
					Severity:  severity,
					Title:     "High Temperature",
					Message:   fmt.Sprintf("%s temperature is %.1f°C, above the %.1f°C limit", zone, t, th.TempWarningHigh),
					Zone:      zone,
					Value:     floatPtr(t),
					Threshold: floatPtr(th.TempWarningHigh),
					Action:    "Rest and check the warm area for redness or swelling",
				},
			})
		} else if t > 0 && t < th.TempWarningLow {
			severity := models.SeverityWarning
			if t < th.TempCriticalLow {
				severity = models.SeverityCritical
			}
			matched = append(matched, firing{
				key: ruleKey{kind: ruleTempLow, zone: i},
				alert: models.Alert{
					Type:      models.AlertTemperature,
					Severity:  severity,
					Title:     "Low Temperature",
					Message:   fmt.Sprintf("%s temperature is %.1f°C, below the %.1f°C limit", zone, t, th.TempWarningLow),
					Zone:      zone,
					Value:     floatPtr(t),
					Threshold: floatPtr(th.TempWarningLow),
					Action:    "Warm the foot and watch for signs of poor circulation",
				},
			})
		}
	}

	maxTemp, maxZone := r.MaxZoneTemperature()
	minTemp, _ := r.MinZoneTemperature()
	spread := maxTemp - minTemp
	if minTemp > 0 && spread > th.AsymmetryWarning {
		severity := models.SeverityWarning
		if spread > th.AsymmetryCritical {
			severity = models.SeverityCritical
		}
		matched = append(matched, firing{
			key: ruleKey{kind: ruleAsymmetry, zone: noZone},
			alert: models.Alert{
				Type:      models.AlertAsymmetry,
				Severity:  severity,
				Title:     "Temperature Asymmetry",
				Message:   fmt.Sprintf("Temperature spread across zones is %.1f°C, hottest at %s", spread, models.ZoneNames[maxZone]),
				Zone:      models.ZoneNames[maxZone],
				Value:     floatPtr(spread),
				Threshold: floatPtr(th.AsymmetryWarning),
				Action:    "Compare both feet and inspect the warmer area",
			},
		})
	}

	return matched
}
