package health

import (
	"fmt"

	"codeberg.org/mutker/filterdash/internal/errors"
)

// Model evaluates readings against a fixed set of thresholds. It holds no
// state between calls and is safe for concurrent use.
type Model struct {
	thresholds Thresholds
}

// NewModel returns a Model using the given thresholds.
func NewModel(t Thresholds) (*Model, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Model{thresholds: t}, nil
}

var defaultModel = &Model{thresholds: DefaultThresholds()}

// Evaluate evaluates r with the default thresholds.
func Evaluate(r Reading) (Metrics, error) {
	return defaultModel.Evaluate(r)
}

// Evaluate derives Metrics from r. A usage count outside [0, MaxUses] is
// clamped to the nearest bound; only a non-positive MaxUses is an error.
func (m *Model) Evaluate(r Reading) (Metrics, error) {
	if r.MaxUses <= 0 {
		return Metrics{}, errors.New().WithData(ErrInvalidConfiguration,
			fmt.Sprintf("max uses must be positive, got %d", r.MaxUses))
	}

	uses, clamped := clamp(r.CurrentUses, 0, r.MaxUses)

	out := Metrics{
		MaxUses:        r.MaxUses,
		CurrentUses:    uses,
		Clamped:        clamped,
		PressurePSI:    r.PressurePSI,
		PressureStatus: m.thresholds.pressureStatus(r.PressurePSI),
		Components:     componentViews(r.Components),
		KPIs:           kpiViews(r.KPIs),
		System:         r.System,
	}
	out.LifeStatus = m.thresholds.lifeStatus(out.LifeRemaining())

	return out, nil
}

func clamp(v, lo, hi int) (int, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	default:
		return v, false
	}
}

func componentViews(components []Component) []ComponentView {
	views := make([]ComponentView, len(components))
	for i, c := range components {
		views[i] = ComponentView{
			Name:   c.Name,
			Status: c.Status,
			Tag:    TagFor(c.Status),
		}
	}

	return views
}

func kpiViews(kpis []QualityKPI) []KPIView {
	views := make([]KPIView, len(kpis))
	for i, k := range kpis {
		views[i] = KPIView{QualityKPI: k, ReductionPct: Reduction(k.Before, k.After)}
	}

	return views
}

// Reduction returns how much after is below before, in percent of before.
// It is zero when before is zero.
func Reduction(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (before - after) / before * 100
}
