package health

// ColorTag is the display category of a status. The set is closed.
type ColorTag int

const (
	TagNeutral ColorTag = iota
	TagGood
	TagInfo
	TagWarn
	TagBad
)

func (t ColorTag) String() string {
	switch t {
	case TagGood:
		return "good"
	case TagInfo:
		return "info"
	case TagWarn:
		return "warn"
	case TagBad:
		return "bad"
	default:
		return "neutral"
	}
}

// TagFor maps a raw component status to its colour tag. Unknown statuses
// map to TagNeutral.
func TagFor(s ComponentStatus) ColorTag {
	switch s {
	case StatusOK:
		return TagGood
	case StatusActive:
		return TagInfo
	case StatusCheck:
		return TagWarn
	case StatusError:
		return TagBad
	default:
		return TagNeutral
	}
}

// LifeStatus categorizes the remaining filter life.
type LifeStatus int

const (
	LifeCritical LifeStatus = iota
	LifeWarning
	LifeHealthy
)

func (s LifeStatus) String() string {
	switch s {
	case LifeCritical:
		return "CRITICAL"
	case LifeWarning:
		return "WARNING"
	case LifeHealthy:
		return "HEALTHY"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the colour tag used for the life gauge and chart.
func (s LifeStatus) Tag() ColorTag {
	switch s {
	case LifeCritical:
		return TagBad
	case LifeWarning:
		return TagWarn
	case LifeHealthy:
		return TagGood
	default:
		return TagNeutral
	}
}

// PressureStatus categorizes the water pressure.
type PressureStatus int

const (
	PressureNormal PressureStatus = iota
	PressureLow
	PressureHigh
)

func (s PressureStatus) String() string {
	switch s {
	case PressureLow:
		return "LOW"
	case PressureHigh:
		return "HIGH"
	default:
		return "NORMAL"
	}
}

// Tag returns the colour tag for the pressure value. Low pressure is worse
// than high.
func (s PressureStatus) Tag() ColorTag {
	switch s {
	case PressureLow:
		return TagBad
	case PressureHigh:
		return TagWarn
	default:
		return TagGood
	}
}
