package models

// Thresholds holds every fixed threshold used by the scorer and the alert
// engine. Injected into both so test sessions can tighten or relax limits
// without touching globals.
type Thresholds struct {
	// Zone temperature (°C)
	TempWarningHigh  float64
	TempCriticalHigh float64
	TempWarningLow   float64
	TempCriticalLow  float64

	// Max-minus-min zone temperature (°C)
	AsymmetryWarning  float64
	AsymmetryCritical float64

	// Average temperature rate of change (°C per hour)
	TempRateWarning float64

	// Zone pressure (kPa)
	PressureWarning  float64
	PressureHigh     float64
	PressureCritical float64
	PressureSpike    float64 // per-reading delta (kPa)

	// Blood oxygen saturation (%)
	SpO2Normal   float64
	SpO2Warning  float64
	SpO2Low      float64
	SpO2Critical float64

	// Heart rate (BPM)
	HeartRateIdealLow     int
	HeartRateIdealHigh    int
	HeartRateWarningLow   int
	HeartRateWarningHigh  int
	HeartRateCriticalLow  int
	HeartRateCriticalHigh int

	// Battery level (%)
	BatteryLow      float64
	BatteryCritical float64
}

// DefaultThresholds returns the reference thresholds for the wearable.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TempWarningHigh:  35.0,
		TempCriticalHigh: 37.0,
		TempWarningLow:   27.0,
		TempCriticalLow:  25.0,

		AsymmetryWarning:  2.0,
		AsymmetryCritical: 3.5,

		TempRateWarning: 1.5,

		PressureWarning:  80.0,
		PressureHigh:     100.0,
		PressureCritical: 120.0,
		PressureSpike:    30.0,

		SpO2Normal:   95.0,
		SpO2Warning:  92.0,
		SpO2Low:      90.0,
		SpO2Critical: 85.0,

		HeartRateIdealLow:     60,
		HeartRateIdealHigh:    100,
		HeartRateWarningLow:   50,
		HeartRateWarningHigh:  110,
		HeartRateCriticalLow:  40,
		HeartRateCriticalHigh: 130,

		BatteryLow:      20.0,
		BatteryCritical: 10.0,
	}
}
