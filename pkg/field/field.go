package field

import (
	"fmt"
	"strings"
)

// SurfaceType is the playing surface material.
type SurfaceType uint8

const (
	Grass SurfaceType = iota
	Turf
	Hybrid
)

func (s SurfaceType) String() string {
	switch s {
	case Grass:
		return "grass"
	case Turf:
		return "turf"
	case Hybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// MarshalText lets surfaces serialize as their name.
func (s SurfaceType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSurfaceType converts a case-insensitive surface name.
func ParseSurfaceType(name string) (SurfaceType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grass":
		return Grass, nil
	case "turf":
		return Turf, nil
	case "hybrid":
		return Hybrid, nil
	default:
		return Grass, fmt.Errorf("unknown surface type %q", name)
	}
}

// Field is a configured rectangular playing surface. Boundaries and hash
// marks are derived from the dimensions and kept in sync by the
// constructors, Reset and FieldBuilder.
type Field struct {
	Name    string      `json:"name"`
	Surface SurfaceType `json:"surface"`

	Length        float32 `json:"length"`
	Width         float32 `json:"width"`
	EndzoneLength float32 `json:"endzoneLength"`

	North float32 `json:"north"`
	South float32 `json:"south"`
	East  float32 `json:"east"`
	West  float32 `json:"west"`

	LeftHashX  float32 `json:"leftHashX"`
	RightHashX float32 `json:"rightHashX"`
	CenterX    float32 `json:"centerX"`
}

// New returns a field with official NFL dimensions.
func New() *Field {
	f := &Field{}
	f.Reset()
	return f
}

// NewCustom returns a field with the given dimensions in yards. Hash marks
// are placed proportionally unless the width is regulation.
func NewCustom(length, width, endzoneLength float32) (*Field, error) {
	if err := validateDimensions(length, width, endzoneLength); err != nil {
		return nil, err
	}
	f := New()
	f.Name = "Custom Field"
	f.EndzoneLength = endzoneLength
	f.setDimensions(length, width)
	return f, nil
}

// Reset restores NFL defaults, including name and surface.
func (f *Field) Reset() {
	f.Name = DefaultFieldName
	f.Surface = Grass
	f.EndzoneLength = EndZoneLengthYards
	f.setDimensions(FieldLengthYards, FieldWidthYards)
}

// Validate re-checks the dimension invariants, which direct assignment to
// the exported fields can break.
func (f *Field) Validate() error {
	return validateDimensions(f.Length, f.Width, f.EndzoneLength)
}

func validateDimensions(length, width, endzoneLength float32) error {
	// negated comparisons so NaN is rejected too
	if !(length > 0) || !(width > 0) || !(endzoneLength > 0) {
		return fmt.Errorf("%w: length %v, width %v and end zone %v must be positive",
			ErrInvalidDimensions, length, width, endzoneLength)
	}
	if !(endzoneLength*2 < length) {
		return fmt.Errorf("%w: end zones of %v yards leave no playing field in %v yards",
			ErrInvalidDimensions, endzoneLength, length)
	}
	return nil
}

func (f *Field) setDimensions(length, width float32) {
	f.Length = length
	f.Width = width
	f.South = 0
	f.West = 0
	f.North = length
	f.East = width
	f.LeftHashX, f.RightHashX, f.CenterX = hashMarks(width)
}

func hashMarks(width float32) (left, right, center float32) {
	center = width / 2
	if width == FieldWidthYards {
		return HashMarkFromSidelineYards, width - HashMarkFromSidelineYards, center
	}
	return width * HashMarkLeftRatio, width * HashMarkRightRatio, center
}

// Contains reports whether (x, y) is on the field, boundary lines included.
func (f *Field) Contains(x, y float32) bool {
	return x >= f.West && x <= f.East && y >= f.South && y <= f.North
}

func (f *Field) ContainsCoordinate(c Coordinate) bool {
	return f.Contains(c.X, c.Y)
}

// ContainsInPlay reports whether c is on the field outside both end zones.
// Goal lines count as in play.
func (f *Field) ContainsInPlay(c Coordinate) bool {
	return f.ContainsCoordinate(c) && f.IsInPlayingField(c.Y)
}

// ContainsArea reports whether the rectangle spanned by topLeft and
// bottomRight lies on the field. topLeft must be north-west of bottomRight:
// greater Y, lesser X. Inverted or degenerate rectangles are rejected.
func (f *Field) ContainsArea(topLeft, bottomRight Coordinate) bool {
	if !(bottomRight.X > topLeft.X) || !(topLeft.Y > bottomRight.Y) {
		return false
	}
	return f.ContainsCoordinate(topLeft) && f.ContainsCoordinate(bottomRight)
}

// ContainsLine reports whether the segment from start to end lies on the
// field. The field is convex, so checking the endpoints is sufficient.
func (f *Field) ContainsLine(start, end Coordinate) bool {
	return f.ContainsCoordinate(start) && f.ContainsCoordinate(end)
}

// CheckBoundary returns the first boundary c violates, checking west, east,
// south and north in that order.
func (f *Field) CheckBoundary(c Coordinate) (BoundaryViolation, bool) {
	switch {
	case c.X < f.West:
		return WestOutOfBounds, true
	case c.X > f.East:
		return EastOutOfBounds, true
	case c.Y < f.South:
		return SouthOutOfBounds, true
	case c.Y > f.North:
		return NorthOutOfBounds, true
	}
	return 0, false
}

// DistanceToBoundary returns the distance from c to the nearest edge. The
// result is negative when c is outside the field.
func (f *Field) DistanceToBoundary(c Coordinate) float32 {
	return min(c.X-f.West, f.East-c.X, c.Y-f.South, f.North-c.Y)
}

// DistanceToSideline returns the distance from c to the nearer sideline.
func (f *Field) DistanceToSideline(c Coordinate) float32 {
	return min(c.X-f.West, f.East-c.X)
}

// DistanceToEndZone returns the distance from c to the nearer goal line. It
// is negative inside an end zone, the magnitude being the depth.
func (f *Field) DistanceToEndZone(c Coordinate) float32 {
	south := f.South + f.EndzoneLength
	north := f.North - f.EndzoneLength
	switch {
	case c.Y < south:
		return c.Y - south
	case c.Y > north:
		return north - c.Y
	default:
		return min(c.Y-south, north-c.Y)
	}
}

// IsInHomeEndzone reports whether y lies in [0, endzone).
func (f *Field) IsInHomeEndzone(y float32) bool {
	return y >= f.South && y < f.South+f.EndzoneLength
}

// IsInAwayEndzone reports whether y lies in (length-endzone, length].
func (f *Field) IsInAwayEndzone(y float32) bool {
	return y > f.North-f.EndzoneLength && y <= f.North
}

// IsInPlayingField reports whether y lies between the goal lines, inclusive.
func (f *Field) IsInPlayingField(y float32) bool {
	return y >= f.South+f.EndzoneLength && y <= f.North-f.EndzoneLength
}

// Clamp projects c onto this field.
func (f *Field) Clamp(c Coordinate) Coordinate {
	return Coordinate{
		X: clampf(c.X, f.West, f.East),
		Y: clampf(c.Y, f.South, f.North),
	}
}

// IsBetweenHashes reports whether c lies laterally between the hash marks,
// inclusive.
func (f *Field) IsBetweenHashes(c Coordinate) bool {
	return f.ContainsCoordinate(c) && c.X >= f.LeftHashX && c.X <= f.RightHashX
}

// SpotBall returns where the ball is placed for the next snap when it became
// dead at c: on the field, moved laterally to the nearer hash mark if it
// was outside them.
func (f *Field) SpotBall(c Coordinate) Coordinate {
	c = f.Clamp(c)
	c.X = clampf(c.X, f.LeftHashX, f.RightHashX)
	return c
}

// Area returns the surface of the whole field in square yards.
func (f *Field) Area() float32 {
	return f.Length * f.Width
}

// PlayingArea returns the surface between the goal lines in square yards.
func (f *Field) PlayingArea() float32 {
	return (f.Length - 2*f.EndzoneLength) * f.Width
}

func (f *Field) String() string {
	return fmt.Sprintf("%s (%s, %.2fx%.2f yd, end zones %.2f yd)",
		f.Name, f.Surface, f.Length, f.Width, f.EndzoneLength)
}
