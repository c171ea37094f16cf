package alerting

import (
	"fmt"

	"footsense-monitor/internal/models"
)

// vitalsRules checks blood oxygen and heart rate. Zero values mean the
// sensor has not produced a sample and never match.
func (e *Engine) vitalsRules(r models.SensorReading) []firing {
	th := e.thresholds
	var matched []firing

	if r.SpO2 > 0 && r.SpO2 < th.SpO2Normal {
		severity := models.SeverityInfo
		switch {
		case r.SpO2 < th.SpO2Critical:
			severity = models.SeverityCritical
		case r.SpO2 < th.SpO2Warning:
			severity = models.SeverityWarning
		}
		matched = append(matched, firing{
			key: ruleKey{kind: ruleLowSpO2, zone: noZone},
			alert: models.Alert{
				Type:      models.AlertCirculation,
				Severity:  severity,
				Title:     "Low Blood Oxygen",
				Message:   fmt.Sprintf("SpO2 is %.0f%%, below the normal %.0f%%", r.SpO2, th.SpO2Normal),
				Value:     floatPtr(r.SpO2),
				Threshold: floatPtr(th.SpO2Normal),
				Action:    "Sit down, rest and take slow deep breaths",
			},
		})
	}

	if hr := r.HeartRate; hr > 0 {
		if hr < th.HeartRateWarningLow {
			severity := models.SeverityWarning
			if hr < th.HeartRateCriticalLow {
				severity = models.SeverityCritical
			}
			matched = append(matched, firing{
				key: ruleKey{kind: ruleLowHeartRate, zone: noZone},
				alert: models.Alert{
					Type:      models.AlertCirculation,
					Severity:  severity,
					Title:     "Low Heart Rate",
					Message:   fmt.Sprintf("Heart rate is %d BPM, below the %d BPM limit", hr, th.HeartRateWarningLow),
					Value:     floatPtr(float64(hr)),
					Threshold: floatPtr(float64(th.HeartRateWarningLow)),
					Action:    "Rest and recheck; seek help if you feel faint",
				},
			})
		} else if hr > th.HeartRateWarningHigh {
			severity := models.SeverityWarning
			if hr > th.HeartRateCriticalHigh {
				severity = models.SeverityCritical
			}
			matched = append(matched, firing{
				key: ruleKey{kind: ruleHighHeartRate, zone: noZone},
				alert: models.Alert{
					Type:      models.AlertCirculation,
					Severity:  severity,
					Title:     "High Heart Rate",
					Message:   fmt.Sprintf("Heart rate is %d BPM, above the %d BPM limit", hr, th.HeartRateWarningHigh),
					Value:     floatPtr(float64(hr)),
					Threshold: floatPtr(float64(th.HeartRateWarningHigh)),
					Action:    "Slow down and rest until your heart rate settles",
				},
			})
		}
	}

	return matched
}
