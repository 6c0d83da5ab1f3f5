package field

// FieldError is returned by operations that construct or reshape a Field.
type FieldError uint8

const (
	// ErrInvalidDimensions means a length, width or end zone length was
	// non-positive, or the end zones would consume the whole field.
	ErrInvalidDimensions FieldError = iota + 1
	// ErrAllocation means a buffer needed for the result could not be
	// acquired.
	ErrAllocation
)

func (e FieldError) Error() string {
	switch e {
	case ErrInvalidDimensions:
		return "invalid field dimensions"
	case ErrAllocation:
		return "allocation failed"
	default:
		return "unknown field error"
	}
}

// CoordinateError is returned by ValidateCoordinate.
type CoordinateError uint8

const (
	ErrOutOfBoundsX CoordinateError = iota + 1
	ErrOutOfBoundsY
	ErrInvalidCoordinate
)

func (e CoordinateError) Error() string {
	switch e {
	case ErrOutOfBoundsX:
		return "coordinate x out of bounds"
	case ErrOutOfBoundsY:
		return "coordinate y out of bounds"
	case ErrInvalidCoordinate:
		return "invalid coordinate"
	default:
		return "unknown coordinate error"
	}
}

// BoundaryViolation names the edge of the field a coordinate lies beyond.
type BoundaryViolation uint8

const (
	WestOutOfBounds BoundaryViolation = iota + 1
	EastOutOfBounds
	SouthOutOfBounds
	NorthOutOfBounds
)

func (v BoundaryViolation) String() string {
	switch v {
	case WestOutOfBounds:
		return "west_out_of_bounds"
	case EastOutOfBounds:
		return "east_out_of_bounds"
	case SouthOutOfBounds:
		return "south_out_of_bounds"
	case NorthOutOfBounds:
		return "north_out_of_bounds"
	default:
		return "unknown"
	}
}

// Description returns a human readable explanation of the violation.
func (v BoundaryViolation) Description() string {
	switch v {
	case WestOutOfBounds:
		return "beyond the west sideline"
	case EastOutOfBounds:
		return "beyond the east sideline"
	case SouthOutOfBounds:
		return "beyond the south end line"
	case NorthOutOfBounds:
		return "beyond the north end line"
	default:
		return "unknown boundary"
	}
}

// MarshalText lets violations serialize as their tag name.
func (v BoundaryViolation) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
