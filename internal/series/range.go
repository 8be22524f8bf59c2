package series

import (
	"fmt"
	"strings"

	"codeberg.org/mutker/filterdash/internal/errors"
)

// Range selects which window of the degradation curve to build.
type Range int

const (
	// NearTerm shows the early-life window only.
	NearTerm Range = iota
	// FullRated shows the baseline and the live point.
	FullRated
	// Projected extends FullRated with a linear run-out to zero at the
	// rated usage count.
	Projected
)

// Ranges lists the selectable ranges in display order.
var Ranges = []Range{NearTerm, FullRated, Projected}

func (r Range) String() string {
	switch r {
	case NearTerm:
		return "near"
	case FullRated:
		return "full"
	case Projected:
		return "projected"
	default:
		return "invalid"
	}
}

// Label is the short text used on range toggles, given the near-term
// limit and the rated number of uses.
func (r Range) Label(nearTermLimit, maxUses int) string {
	switch r {
	case NearTerm:
		return fmt.Sprintf("1-%d Uses", nearTermLimit)
	case FullRated:
		return fmt.Sprintf("1-%d Uses", maxUses)
	case Projected:
		return "All (Projected)"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the defined ranges.
func (r Range) Valid() bool {
	return r >= NearTerm && r <= Projected
}

// Next returns the range after r, wrapping around.
func (r Range) Next() Range {
	if !r.Valid() {
		return FullRated
	}
	return Ranges[(int(r)+1)%len(Ranges)]
}

// ParseRange parses a range name. Accepted names are near/1-10,
// full/1-50 and projected/all, in any case.
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "near", "near_term", "1-10":
		return NearTerm, nil
	case "full", "full_rated", "1-50":
		return FullRated, nil
	case "projected", "all":
		return Projected, nil
	default:
		return 0, errors.New().WithData(ErrInvalidSelector, s)
	}
}
