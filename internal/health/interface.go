package health

import "time"

// Evaluator turns a Reading into Metrics.
type Evaluator interface {
	Evaluate(r Reading) (Metrics, error)
}

// Reading is one snapshot of the device's usage and sensor values.
type Reading struct {
	MaxUses     int
	CurrentUses int
	PressurePSI float64
	Components  []Component
	KPIs        []QualityKPI
	System      SystemInfo
}

// Component is a named part of the device and its raw reported status.
type Component struct {
	Name   string
	Status ComponentStatus
}

// ComponentStatus is the raw status string reported for a component.
// Values outside the known set are valid input and display as neutral.
type ComponentStatus string

const (
	StatusOK      ComponentStatus = "OK"
	StatusActive  ComponentStatus = "ACTIVE"
	StatusCheck   ComponentStatus = "CHECK"
	StatusError   ComponentStatus = "ERROR"
	StatusUnknown ComponentStatus = "UNKNOWN"
)

// QualityKPI is a water quality measurement taken before and after the filter.
type QualityKPI struct {
	Title  string
	Unit   string
	Before float64
	After  float64
}

// SystemInfo is device information shown as-is on the dashboard.
type SystemInfo struct {
	Uptime      time.Duration
	FlowRateGPM float64
	Firmware    string
}

// Metrics is the derived view of a Reading.
type Metrics struct {
	MaxUses     int
	CurrentUses int
	// Clamped is set when the reading's usage count was outside [0, MaxUses].
	Clamped bool

	LifeStatus     LifeStatus
	PressurePSI    float64
	PressureStatus PressureStatus
	Components     []ComponentView
	KPIs           []KPIView
	System         SystemInfo
}

// LifeRemaining returns the remaining filter capacity in [0, 1]. It is
// computed from the usage counts on every call.
func (m Metrics) LifeRemaining() float64 {
	if m.MaxUses <= 0 {
		return 0
	}
	return float64(m.MaxUses-m.CurrentUses) / float64(m.MaxUses)
}

// LifePercent returns LifeRemaining scaled to [0, 100], unrounded.
func (m Metrics) LifePercent() float64 {
	return m.LifeRemaining() * 100
}

// ComponentView is a component with its display colour tag.
type ComponentView struct {
	Name   string
	Status ComponentStatus
	Tag    ColorTag
}

// KPIView is a quality KPI with its derived reduction.
type KPIView struct {
	QualityKPI
	// ReductionPct is how much the filter lowered the value, in percent of Before.
	ReductionPct float64
}
