package field

import (
	"fmt"
	"strconv"
)

// Field position labels.
const (
	LabelSouthEndZone = "South End Zone"
	LabelNorthEndZone = "North End Zone"
	LabelOwnGoal      = "Own Goal"
	LabelOppGoal      = "Opp Goal"
	LabelMidfield     = "Midfield"
	LabelOutOfBounds  = "Out of Bounds"
)

// AppendFieldPosition appends the broadcast style label for c to dst and
// returns the extended buffer, e.g. "Own 25", "Midfield", "Opp 10".
// Coordinates off the regulation field are labelled "Out of Bounds", and
// anything rounding to yard line 0 or 100 is a goal line.
func AppendFieldPosition(dst []byte, c Coordinate) []byte {
	if !c.IsValid() {
		return append(dst, LabelOutOfBounds...)
	}
	if c.IsOnGoalLine() {
		if c.Y < FieldLengthYards/2 {
			return append(dst, LabelOwnGoal...)
		}
		return append(dst, LabelOppGoal...)
	}
	if c.IsInSouthEndZone() {
		return append(dst, LabelSouthEndZone...)
	}
	if c.IsInNorthEndZone() {
		return append(dst, LabelNorthEndZone...)
	}

	yl, _ := c.NearestYardLine()
	switch {
	case yl == GoalLineYard:
		return append(dst, LabelOwnGoal...)
	case yl == MaxYardLine:
		return append(dst, LabelOppGoal...)
	case yl == MidfieldYard:
		return append(dst, LabelMidfield...)
	case yl < MidfieldYard:
		dst = append(dst, "Own "...)
		return strconv.AppendUint(dst, uint64(yl), 10)
	default:
		dst = append(dst, "Opp "...)
		return strconv.AppendUint(dst, uint64(MaxYardLine-yl), 10)
	}
}

// FieldPosition returns the label AppendFieldPosition would append.
func FieldPosition(c Coordinate) string {
	return string(AppendFieldPosition(make([]byte, 0, 16), c))
}

// FieldPositionToCoordinate maps a yard line and lateral position to a
// coordinate. yardLine is not range checked: values above 100 produce a
// coordinate beyond the north end line that IsValid rejects.
func FieldPositionToCoordinate(yardLine uint8, x float32) Coordinate {
	return Coordinate{X: x, Y: float32(yardLine) + EndZoneLengthYards}
}

// ValidateCoordinate checks c against the regulation field. X is checked
// before Y, so a coordinate off on both axes reports ErrOutOfBoundsX.
func ValidateCoordinate(c Coordinate) error {
	if isNaN(c.X) || isNaN(c.Y) {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}
	if c.X < 0 || c.X > FieldWidthYards {
		return fmt.Errorf("%w: x=%v not in [0, %v]", ErrOutOfBoundsX, c.X, FieldWidthYards)
	}
	if c.Y < 0 || c.Y > FieldLengthYards {
		return fmt.Errorf("%w: y=%v not in [0, %v]", ErrOutOfBoundsY, c.Y, FieldLengthYards)
	}
	return nil
}

func isNaN(v float32) bool {
	return v != v
}
