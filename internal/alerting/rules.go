package alerting

// ruleKind enumerates every alert rule. Keying the cooldown map with a
// closed enumeration plus a zone index (instead of composed strings) makes
// rule coverage checkable at compile time.
type ruleKind int

const (
	ruleTempHigh ruleKind = iota
	ruleTempLow
	rulePressureHigh
	rulePressureSpike
	ruleLowSpO2
	ruleLowHeartRate
	ruleHighHeartRate
	ruleAsymmetry
	ruleGaitInstability
	ruleLowBattery
)

// noZone marks rules that are not scoped to a single foot zone.
const noZone = -1

// ruleKey identifies one rule instance for cooldown purposes: zone-scoped
// rules cool down per zone, the rest per kind.
type ruleKey struct {
	kind ruleKind
	zone int
}

func floatPtr(v float64) *float64 {
	return &v
}
