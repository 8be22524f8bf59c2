package health

import "codeberg.org/mutker/filterdash/internal/errors"

const (
	// ErrInvalidConfiguration is returned for readings with a non-positive
	// usage rating and for inconsistent thresholds.
	ErrInvalidConfiguration = errors.ErrInvalidConfig
)
