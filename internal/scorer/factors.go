package scorer

import (
	"sort"
	"strings"

	"footsense-monitor/internal/models"
)

// maxFactors caps the contributing-factor list on a risk score.
const maxFactors = 5

// factorThreshold is the sub-score above which the matching factor-specific
// recommendation is appended.
const factorThreshold = 50

// rankFactors orders factors most severe first (strings naming a critical
// or dangerous condition ahead of the rest, original order otherwise) and
// truncates to maxFactors. Always returns a non-nil slice so the
// serialized field stays a JSON array.
func rankFactors(factors []string) []string {
	if factors == nil {
		return []string{}
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factorSeverity(factors[i]) < factorSeverity(factors[j])
	})
	if len(factors) > maxFactors {
		factors = factors[:maxFactors]
	}
	return factors
}

func factorSeverity(factor string) int {
	if strings.Contains(factor, "Critical") || strings.Contains(factor, "Dangerous") {
		return 0
	}
	return 1
}

// recommendations builds the advice list: a fixed pair for the severity
// tier, then one entry per sub-score that exceeds factorThreshold.
func (s *Scorer) recommendations(severity models.RiskSeverity, temp, pressure, circulation, gait int) []string {
	var recs []string
	switch severity {
	case models.RiskLow:
		recs = append(recs,
			"Continue regular monitoring",
			"Maintain your daily foot care routine")
	case models.RiskModerate:
		recs = append(recs,
			"Inspect your feet for visible changes",
			"Consider reducing activity for the rest of the day")
	case models.RiskHigh:
		recs = append(recs,
			"Rest and elevate your feet",
			"Contact your care provider if symptoms persist")
	case models.RiskCritical:
		recs = append(recs,
			"Stop activity immediately and rest",
			"Seek medical attention as soon as possible")
	}

	if temp > factorThreshold {
		recs = append(recs, "Check the warm area for redness or swelling")
	}
	if pressure > factorThreshold {
		recs = append(recs, "Change footwear or adjust insoles to redistribute pressure")
	}
	if circulation > factorThreshold {
		recs = append(recs, "Do gentle ankle and toe movements to improve blood flow")
	}
	if gait > factorThreshold {
		recs = append(recs, "Use support while walking and avoid uneven surfaces")
	}

	return recs
}
