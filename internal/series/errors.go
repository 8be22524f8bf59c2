package series

import "codeberg.org/mutker/filterdash/internal/errors"

const (
	ErrInvalidSelector = errors.ErrInvalidSelector
	ErrInvalidBaseline = errors.ErrInvalidBaseline
	ErrInvalidMetrics  = errors.ErrInvalidConfig
)
