package models

// RiskSeverity is the overall risk tier derived from the overall score.
type RiskSeverity string

const (
	RiskLow      RiskSeverity = "low"
	RiskModerate RiskSeverity = "moderate"
	RiskHigh     RiskSeverity = "high"
	RiskCritical RiskSeverity = "critical"
)

// SeverityForScore derives the risk tier from an overall score.
// Breakpoints: ≤30 low, ≤50 moderate, ≤70 high, else critical.
func SeverityForScore(score int) RiskSeverity {
	switch {
	case score <= 30:
		return RiskLow
	case score <= 50:
		return RiskModerate
	case score <= 70:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// RiskScore is one scoring result. Created fresh on every scoring pass and
// never mutated afterwards; the persistence identifier is assigned by the
// storage collaborator via WithID, never by the engine.
type RiskScore struct {
	ID               string       `json:"id,omitempty"`
	OverallScore     int          `json:"overall_score"`
	Severity         RiskSeverity `json:"severity"`
	TemperatureScore int          `json:"temperature_score"`
	PressureScore    int          `json:"pressure_score"`
	CirculationScore int          `json:"circulation_score"`
	GaitScore        int          `json:"gait_score"`
	Factors          []string     `json:"factors"`
	Recommendations  []string     `json:"recommendations"`
	Timestamp        int64        `json:"timestamp"` // epoch milliseconds, from the source reading
}

// WithID returns a copy of the score with the persistence identifier set.
func (s RiskScore) WithID(id string) RiskScore {
	s.ID = id
	return s
}
