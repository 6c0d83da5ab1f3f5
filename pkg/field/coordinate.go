package field

import (
	"fmt"
	"math"
)

// Coordinate is a position on the field in yards. The origin is the
// southwest corner: X runs east across the width, Y runs north along the
// length. Construction never validates; use IsValid or ValidateCoordinate.
type Coordinate struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// NewCoordinate returns the coordinate (x, y).
func NewCoordinate(x, y float32) Coordinate {
	return Coordinate{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance to other in yards.
func (c Coordinate) DistanceTo(other Coordinate) float32 {
	dx := float64(other.X) - float64(c.X)
	dy := float64(other.Y) - float64(c.Y)
	return float32(math.Hypot(dx, dy))
}

// ApproxEqual reports whether both axes differ by no more than tolerance.
func (c Coordinate) ApproxEqual(other Coordinate, tolerance float32) bool {
	return absf(c.X-other.X) <= tolerance && absf(c.Y-other.Y) <= tolerance
}

// IsValid reports whether c lies on the regulation field, end zones and
// boundary lines included.
func (c Coordinate) IsValid() bool {
	return c.X >= 0 && c.X <= FieldWidthYards &&
		c.Y >= 0 && c.Y <= FieldLengthYards
}

// IsInBounds reports whether c is in the playing field proper. End zones
// and the sidelines themselves are excluded, goal lines are included.
func (c Coordinate) IsInBounds() bool {
	if !c.IsValid() {
		return false
	}
	return c.Y >= EndZoneLengthYards && c.Y <= EndZoneLengthYards+PlayingFieldLengthYards &&
		c.X > 0 && c.X < FieldWidthYards
}

// IsValidForField reports whether c lies within f, which may be custom sized.
func (c Coordinate) IsValidForField(f *Field) bool {
	return f.ContainsCoordinate(c)
}

func (c Coordinate) IsInEndZone() bool {
	return c.IsInSouthEndZone() || c.IsInNorthEndZone()
}

func (c Coordinate) IsInSouthEndZone() bool {
	return c.IsValid() && c.Y < EndZoneLengthYards
}

func (c Coordinate) IsInNorthEndZone() bool {
	return c.IsValid() && c.Y > EndZoneLengthYards+PlayingFieldLengthYards
}

// IsOnSideline reports whether c sits on either sideline within
// BoundaryEpsilon.
func (c Coordinate) IsOnSideline() bool {
	if !c.IsValid() {
		return false
	}
	return absf(c.X) < BoundaryEpsilon || absf(c.X-FieldWidthYards) < BoundaryEpsilon
}

// IsOnGoalLine reports whether c sits on either goal line within
// BoundaryEpsilon.
func (c Coordinate) IsOnGoalLine() bool {
	if !c.IsValid() {
		return false
	}
	return absf(c.Y-EndZoneLengthYards) < BoundaryEpsilon ||
		absf(c.Y-(EndZoneLengthYards+PlayingFieldLengthYards)) < BoundaryEpsilon
}

// Clamp projects each axis independently onto the regulation field. The
// result is always valid.
func (c Coordinate) Clamp() Coordinate {
	return Coordinate{
		X: clampf(c.X, 0, FieldWidthYards),
		Y: clampf(c.Y, 0, FieldLengthYards),
	}
}

// ToFeet returns c with both axes expressed in feet.
func (c Coordinate) ToFeet() Coordinate {
	return Coordinate{X: c.X * FeetPerYard, Y: c.Y * FeetPerYard}
}

// FromFeet builds a yard coordinate from values in feet.
func FromFeet(x, y float32) Coordinate {
	return Coordinate{X: x / FeetPerYard, Y: y / FeetPerYard}
}

// ToMeters returns c with both axes expressed in meters.
func (c Coordinate) ToMeters() Coordinate {
	return Coordinate{X: c.X * MetersPerYard, Y: c.Y * MetersPerYard}
}

// FromMeters builds a yard coordinate from values in meters.
func FromMeters(x, y float32) Coordinate {
	return Coordinate{X: x / MetersPerYard, Y: y / MetersPerYard}
}

// NearestYardLine returns the yard line (0-100, measured from the south goal
// line) closest to c, rounding halves away from zero. It reports false when
// c is invalid or inside an end zone.
func (c Coordinate) NearestYardLine() (uint8, bool) {
	if !c.IsValid() || c.IsInEndZone() {
		return 0, false
	}
	yl := math.Round(float64(c.Y - EndZoneLengthYards))
	if yl < 0 {
		yl = 0
	}
	if yl > float64(MaxYardLine) {
		yl = float64(MaxYardLine)
	}
	return uint8(yl), true
}

// MirrorX reflects c across the north-south center line.
func (c Coordinate) MirrorX() Coordinate {
	return Coordinate{X: FieldWidthYards - c.X, Y: c.Y}
}

// MirrorY reflects c across the fifty yard line.
func (c Coordinate) MirrorY() Coordinate {
	return Coordinate{X: c.X, Y: FieldLengthYards - c.Y}
}

// Rotate180 rotates c half a turn about the center of the field. It equals
// MirrorX followed by MirrorY, in either order.
func (c Coordinate) Rotate180() Coordinate {
	return Coordinate{X: FieldWidthYards - c.X, Y: FieldLengthYards - c.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", c.X, c.Y)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
