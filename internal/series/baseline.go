package series

import (
	"fmt"

	"codeberg.org/mutker/filterdash/internal/errors"
)

// Point is one sample of the degradation curve: a usage count and the
// filter life left at that count, in percent.
type Point struct {
	X int
	Y float64
}

// Baseline is the reference degradation curve that every series is drawn
// on top of.
type Baseline []Point

// DefaultBaseline is the factory degradation shape of the filter.
var DefaultBaseline = Baseline{
	{X: 0, Y: 100},
	{X: 5, Y: 95},
	{X: 10, Y: 88},
	{X: 15, Y: 80},
	{X: 20, Y: 70},
	{X: 25, Y: 60},
	{X: 30, Y: 50},
	{X: 35, Y: 40},
	{X: 40, Y: 25},
}

// Validate checks that b starts at zero uses, has strictly increasing
// usage counts and never gains life.
func (b Baseline) Validate() error {
	errFactory := errors.New()

	if len(b) == 0 {
		return errFactory.WithData(ErrInvalidBaseline, "baseline is empty")
	}
	if b[0].X != 0 {
		return errFactory.WithData(ErrInvalidBaseline,
			fmt.Sprintf("baseline must start at 0 uses, starts at %d", b[0].X))
	}

	for i, p := range b {
		if p.Y < 0 || p.Y > 100 {
			return errFactory.WithData(ErrInvalidBaseline,
				fmt.Sprintf("point %d: life %g outside [0, 100]", i, p.Y))
		}
		if i == 0 {
			continue
		}
		prev := b[i-1]
		if p.X <= prev.X {
			return errFactory.WithData(ErrInvalidBaseline,
				fmt.Sprintf("point %d: uses %d not after %d", i, p.X, prev.X))
		}
		if p.Y > prev.Y {
			return errFactory.WithData(ErrInvalidBaseline,
				fmt.Sprintf("point %d: life rises from %g to %g", i, prev.Y, p.Y))
		}
	}

	return nil
}

// Clone returns a copy of b.
func (b Baseline) Clone() Baseline {
	out := make(Baseline, len(b))
	copy(out, b)
	return out
}
