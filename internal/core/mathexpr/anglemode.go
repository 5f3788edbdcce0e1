package mathexpr

import (
	"fmt"
	"strings"
)

// AngleMode decides how bare numeric trig arguments are interpreted
// Explicit degree markers always win regardless of mode
type AngleMode uint8

// Angle modes; radians is the zero value and the session default
const (
	AngleRadians AngleMode = iota
	AngleDegrees
)

// String returns the wire name of the mode
func (m AngleMode) String() string {
	if m == AngleDegrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleMode maps a wire name to an AngleMode
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "radians", "rad":
		return AngleRadians, nil
	case "degrees", "deg":
		return AngleDegrees, nil
	default:
		return AngleRadians, fmt.Errorf("unknown angle mode %q", s)
	}
}
