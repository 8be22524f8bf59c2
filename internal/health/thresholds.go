package health

import (
	"fmt"

	"codeberg.org/mutker/filterdash/internal/errors"
)

const (
	defaultLifeCritical = 0.20
	defaultLifeWarning  = 0.50
	defaultPressureLow  = 40
	defaultPressureHigh = 80
)

// Thresholds are the band edges used to categorize a reading. Each band is
// closed on its lower edge: a fraction equal to LifeCritical is a warning,
// and pressures equal to PressureLow or PressureHigh are normal.
type Thresholds struct {
	LifeCritical float64
	LifeWarning  float64
	PressureLow  float64
	PressureHigh float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		LifeCritical: defaultLifeCritical,
		LifeWarning:  defaultLifeWarning,
		PressureLow:  defaultPressureLow,
		PressureHigh: defaultPressureHigh,
	}
}

func (t Thresholds) Validate() error {
	errFactory := errors.New()

	if t.LifeCritical <= 0 || t.LifeWarning > 1 || t.LifeCritical >= t.LifeWarning {
		return errFactory.WithData(ErrInvalidConfiguration,
			fmt.Sprintf("life thresholds must satisfy 0 < critical < warning <= 1, got %g/%g",
				t.LifeCritical, t.LifeWarning))
	}

	if t.PressureLow > t.PressureHigh {
		return errFactory.WithData(ErrInvalidConfiguration,
			fmt.Sprintf("pressure low %g exceeds high %g", t.PressureLow, t.PressureHigh))
	}

	return nil
}

func (t Thresholds) lifeStatus(fraction float64) LifeStatus {
	switch {
	case fraction < t.LifeCritical:
		return LifeCritical
	case fraction < t.LifeWarning:
		return LifeWarning
	default:
		return LifeHealthy
	}
}

func (t Thresholds) pressureStatus(psi float64) PressureStatus {
	switch {
	case psi < t.PressureLow:
		return PressureLow
	case psi > t.PressureHigh:
		return PressureHigh
	default:
		return PressureNormal
	}
}
