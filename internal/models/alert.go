package models

// AlertType classifies which signal produced an alert.
type AlertType string

const (
	AlertTemperature AlertType = "temperature"
	AlertPressure    AlertType = "pressure"
	AlertCirculation AlertType = "circulation"
	AlertGait        AlertType = "gait"
	AlertBattery     AlertType = "battery"
	AlertAsymmetry   AlertType = "asymmetry"
)

// AlertSeverity is the alert's severity level.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is one user-facing alert produced by a threshold rule. Mutated only
// to flip the read flag; removal happens through the store's retention and
// clear operations.
type Alert struct {
	ID        string        `json:"id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Zone      string        `json:"zone,omitempty"`      // affected zone name, when zone-scoped
	Value     *float64      `json:"value,omitempty"`     // measured value that triggered the rule
	Threshold *float64      `json:"threshold,omitempty"` // threshold it was compared against
	Action    string        `json:"action,omitempty"`    // recommended action
	Timestamp int64         `json:"timestamp"`           // epoch milliseconds
	Read      bool          `json:"read"`
}

// AlertStats is a read-only aggregate over the current store contents,
// computed on demand and never cached.
type AlertStats struct {
	Total      int                   `json:"total"`
	Unread     int                   `json:"unread"`
	BySeverity map[AlertSeverity]int `json:"by_severity"`
	ByType     map[AlertType]int     `json:"by_type"`
}
