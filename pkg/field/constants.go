package field

// Field dimensions in yards, per the NFL rulebook.
const (
	FieldLengthYards        float32 = 120.0
	FieldWidthYards         float32 = 53.333333
	EndZoneLengthYards      float32 = 10.0
	PlayingFieldLengthYards float32 = FieldLengthYards - 2*EndZoneLengthYards
)

// Hash marks. The default field uses the fixed sideline offset; custom widths
// place the hashes at the same proportions of the width.
const (
	HashMarkFromSidelineYards float32 = 14.875
	HashMarkLeftRatio         float32 = 0.28
	HashMarkRightRatio        float32 = 0.72
)

// Unit conversions.
const (
	FeetPerYard   float32 = 3.0
	MetersPerYard float32 = 0.9144
)

// Yard lines run from the home goal line (0) to the away goal line (100).
const (
	GoalLineYard    uint8   = 0
	MidfieldYard    uint8   = 50
	MaxYardLine     uint8   = 100
	BoundaryEpsilon float32 = 0.01
)

// DefaultFieldName is used by Init and Reset.
const DefaultFieldName = "NFL Regulation Field"
