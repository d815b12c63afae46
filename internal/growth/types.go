package growth

import (
	"fmt"
	"strings"
)

// TimelineUnit labels the time axis. It never affects computation.
type TimelineUnit uint8

const (
	UnitHours TimelineUnit = iota
	UnitDays
	UnitWeeks
	UnitMonths
)

// String returns the display name of the unit.
func (u TimelineUnit) String() string {
	switch u {
	case UnitHours:
		return "Hours"
	case UnitDays:
		return "Days"
	case UnitWeeks:
		return "Weeks"
	case UnitMonths:
		return "Months"
	default:
		return "Unknown"
	}
}

// ParseTimelineUnit parses a unit name case-insensitively.
func ParseTimelineUnit(s string) (TimelineUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hours", "hour":
		return UnitHours, nil
	case "days", "day":
		return UnitDays, nil
	case "weeks", "week":
		return UnitWeeks, nil
	case "months", "month":
		return UnitMonths, nil
	default:
		return 0, fmt.Errorf("unknown timeline unit %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u TimelineUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *TimelineUnit) UnmarshalText(b []byte) error {
	v, err := ParseTimelineUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// InputParameters is one evaluation's worth of user input.
type InputParameters struct {
	Effort         int          `json:"effort"`
	Resources      int          `json:"resources"`
	Concept        string       `json:"concept"`
	Scalar         *float64     `json:"scalar,omitempty"`    // Used only for unrecognized concepts under FallbackOverride
	Secondary      *int         `json:"secondary,omitempty"` // Perturbs C when friction perturbation is on
	TimelineLength int          `json:"timeline_length"`
	TimelineUnit   TimelineUnit `json:"timeline_unit"`
}

// Input domains as the dashboard widgets constrain them.
const (
	MinLevel          = 0
	MaxLevel          = 100
	MinTimelineLength = 12
	MaxTimelineLength = 120
	TimelineStep      = 12
)

// DomainViolations lists fields outside their declared domains. The engine
// accepts such inputs anyway; callers decide whether to reject or warn.
func (p InputParameters) DomainViolations() []string {
	var out []string
	if p.Effort < MinLevel || p.Effort > MaxLevel {
		out = append(out, fmt.Sprintf("effort %d outside [%d,%d]", p.Effort, MinLevel, MaxLevel))
	}
	if p.Resources < MinLevel || p.Resources > MaxLevel {
		out = append(out, fmt.Sprintf("resources %d outside [%d,%d]", p.Resources, MinLevel, MaxLevel))
	}
	if p.TimelineLength < MinTimelineLength || p.TimelineLength > MaxTimelineLength {
		out = append(out, fmt.Sprintf("timeline length %d outside [%d,%d]", p.TimelineLength, MinTimelineLength, MaxTimelineLength))
	} else if p.TimelineLength%TimelineStep != 0 {
		out = append(out, fmt.Sprintf("timeline length %d not a multiple of %d", p.TimelineLength, TimelineStep))
	}
	if p.TimelineUnit > UnitMonths {
		out = append(out, fmt.Sprintf("timeline unit %d unknown", p.TimelineUnit))
	}
	return out
}

// Point is one growth curve sample.
type Point struct {
	T      float64 `json:"t"`
	Growth float64 `json:"growth"`
}

// DerivedMetrics is the full result of one evaluation. Never mutated after Compute.
type DerivedMetrics struct {
	Concept Concept `json:"concept"`

	InputPotential int     `json:"input_potential"` // I
	Rate           float64 `json:"rate"`            // M
	BaseFriction   float64 `json:"base_friction"`   // C
	FrictionLoad   float64 `json:"friction_load"`   // F
	StrategicBoost float64 `json:"strategic_boost"` // S
	Phi            float64 `json:"phi"`             // Φ
	Delta          float64 `json:"delta"`
	G              float64 `json:"g"`

	TimelineLength float64      `json:"timeline_length"` // Horizon actually sampled
	TimelineUnit   TimelineUnit `json:"timeline_unit"`
	Curve          []Point      `json:"curve"`
}

// Kappa is the resolved concept scalar.
func (m DerivedMetrics) Kappa() float64 { return m.Concept.Kappa }

// Label is the resolved Latin label.
func (m DerivedMetrics) Label() string { return m.Concept.Label }

// PulseRadius is the data-driven radius of the diagram's pulse circle.
func (m DerivedMetrics) PulseRadius() float64 { return PulseRadius(m.G) }
