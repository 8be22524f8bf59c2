package series

import (
	"fmt"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
)

const defaultNearTermLimit = 10

// Builder produces plotted series from evaluated metrics. A Builder is
// immutable after construction and safe for concurrent use.
type Builder struct {
	baseline      Baseline
	nearTermLimit int
}

// Option configures a Builder.
type Option func(*Builder) error

// WithBaseline replaces the reference curve.
func WithBaseline(b Baseline) Option {
	return func(bl *Builder) error {
		if err := b.Validate(); err != nil {
			return err
		}
		bl.baseline = b.Clone()
		return nil
	}
}

// WithNearTermLimit sets the highest usage count shown by NearTerm.
func WithNearTermLimit(limit int) Option {
	return func(bl *Builder) error {
		if limit < 0 {
			return errors.New().WithData(errors.ErrInvalidArgument,
				fmt.Sprintf("near term limit must not be negative, got %d", limit))
		}
		bl.nearTermLimit = limit
		return nil
	}
}

// NewBuilder returns a Builder using DefaultBaseline unless overridden.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		baseline:      DefaultBaseline.Clone(),
		nearTermLimit: defaultNearTermLimit,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// NearTermLimit returns the highest usage count shown by NearTerm.
func (b *Builder) NearTermLimit() int {
	return b.nearTermLimit
}

// Baseline returns a copy of the builder's reference curve.
func (b *Builder) Baseline() Baseline {
	return b.baseline.Clone()
}

// Build returns the series for r. The live point (m.CurrentUses,
// m.LifePercent()) is always appended after the baseline anchors, even
// when its usage count is lower than theirs. Baseline anchors beyond
// m.MaxUses are left out.
func (b *Builder) Build(m health.Metrics, r Range) ([]Point, error) {
	errFactory := errors.New()

	if !r.Valid() {
		return nil, errFactory.WithData(ErrInvalidSelector, int(r))
	}
	if m.MaxUses <= 0 {
		return nil, errFactory.WithData(ErrInvalidMetrics,
			fmt.Sprintf("max uses must be positive, got %d", m.MaxUses))
	}

	points := make([]Point, 0, len(b.baseline)+2)
	for _, p := range b.baseline {
		if p.X <= m.MaxUses {
			points = append(points, p)
		}
	}
	points = append(points, Point{X: m.CurrentUses, Y: m.LifePercent()})

	switch r {
	case NearTerm:
		return b.nearTerm(points), nil
	case Projected:
		return append(points, Point{X: m.MaxUses, Y: 0}), nil
	default:
		return points, nil
	}
}

func (b *Builder) nearTerm(points []Point) []Point {
	out := points[:0]
	for _, p := range points {
		if p.X <= b.nearTermLimit {
			out = append(out, p)
		}
	}

	return out
}

// Window is the axis extent a series is plotted in.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Extent returns the plot window for points: one use of padding on each
// side of the x range and a little headroom above 100%.
func Extent(points []Point) Window {
	maxX := 0
	for _, p := range points {
		if p.X > maxX {
			maxX = p.X
		}
	}

	return Window{
		XMin: -1,
		XMax: float64(maxX) + 1,
		YMin: 0,
		YMax: 105,
	}
}
