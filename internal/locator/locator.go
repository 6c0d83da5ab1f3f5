// Package locator answers positional queries against a configured field and
// records what it was asked.
package locator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// InstrumentationName names the meter the service's counters belong to.
const InstrumentationName = "github.com/gridiron-sim/fieldgeo/internal/locator"

// Zone names reported by Locate.
const (
	ZoneSouthEndZone = "south_end_zone"
	ZoneNorthEndZone = "north_end_zone"
	ZonePlayingField = "playing_field"
	ZoneOutOfBounds  = "out_of_bounds"
)

// ErrUnknownTransform is returned by Transform for an unsupported operation.
var ErrUnknownTransform = errors.New("unknown transform")

// Dependencies holds all dependencies for the locator service
type Dependencies struct {
	Field  *field.Field
	Logger *slog.Logger
	Meter  metric.Meter // nil disables the counters
}

// Service runs queries against a single field.
type Service struct {
	deps Dependencies

	queries    metric.Int64Counter
	violations metric.Int64Counter
}

// Report describes where a coordinate sits on the field.
type Report struct {
	Coordinate         field.Coordinate         `json:"coordinate"`
	Valid              bool                     `json:"valid"`
	InBounds           bool                     `json:"inBounds"`
	InPlay             bool                     `json:"inPlay"`
	Zone               string                   `json:"zone"`
	OnSideline         bool                     `json:"onSideline"`
	OnGoalLine         bool                     `json:"onGoalLine"`
	BetweenHashes      bool                     `json:"betweenHashes"`
	FieldPosition      string                   `json:"fieldPosition"`
	YardLine           *uint8                   `json:"yardLine,omitempty"`
	Violation          *field.BoundaryViolation `json:"violation,omitempty"`
	DistanceToBoundary float32                  `json:"distanceToBoundary"`
	DistanceToSideline float32                  `json:"distanceToSideline"`
	DistanceToEndZone  float32                  `json:"distanceToEndZone"`
}

// PathReport summarizes a path of coordinates.
type PathReport struct {
	Points    int     `json:"points"`
	Length    float32 `json:"length"`
	Contained bool    `json:"contained"`
	// FirstExit is the index of the first segment leaving the field, -1
	// when the whole path is contained.
	FirstExit int    `json:"firstExit"`
	WKT       string `json:"wkt"`
}

// New creates a locator service.
func New(deps Dependencies) (*Service, error) {
	if deps.Field == nil {
		return nil, errors.New("locator: field is required")
	}
	if err := deps.Field.Validate(); err != nil {
		return nil, fmt.Errorf("locator: %w", err)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.Meter == nil {
		deps.Meter = noop.Meter{}
	}

	s := &Service{deps: deps}
	m := deps.Meter

	var err error
	s.queries, err = m.Int64Counter(
		"fieldgeo.locator.queries",
		metric.WithDescription("Total positional queries answered"),
	)
	if err != nil {
		return nil, fmt.Errorf("create queries counter: %w", err)
	}
	s.violations, err = m.Int64Counter(
		"fieldgeo.locator.violations",
		metric.WithDescription("Queried coordinates found outside the field"),
	)
	if err != nil {
		return nil, fmt.Errorf("create violations counter: %w", err)
	}
	return s, nil
}

// Field returns the field queries run against.
func (s *Service) Field() *field.Field {
	return s.deps.Field
}

// Locate builds a Report for c. Zones, lines and distances use the
// configured field; FieldPosition and YardLine follow the regulation field.
func (s *Service) Locate(ctx context.Context, c field.Coordinate) Report {
	f := s.deps.Field
	r := Report{
		Coordinate:         c,
		Valid:              c.IsValidForField(f),
		InPlay:             f.ContainsInPlay(c),
		BetweenHashes:      f.IsBetweenHashes(c),
		FieldPosition:      field.FieldPosition(c),
		DistanceToBoundary: f.DistanceToBoundary(c),
		DistanceToSideline: f.DistanceToSideline(c),
		DistanceToEndZone:  f.DistanceToEndZone(c),
	}
	r.InBounds = r.InPlay && c.X > f.West && c.X < f.East
	if r.Valid {
		r.OnSideline = near(c.X, f.West) || near(c.X, f.East)
		r.OnGoalLine = near(c.Y, f.South+f.EndzoneLength) || near(c.Y, f.North-f.EndzoneLength)
	}

	switch {
	case !r.Valid:
		r.Zone = ZoneOutOfBounds
	case f.IsInHomeEndzone(c.Y):
		r.Zone = ZoneSouthEndZone
	case f.IsInAwayEndzone(c.Y):
		r.Zone = ZoneNorthEndZone
	default:
		r.Zone = ZonePlayingField
	}

	if yl, ok := c.NearestYardLine(); ok {
		r.YardLine = &yl
	}
	if v, ok := f.CheckBoundary(c); ok {
		r.Violation = &v
	}

	s.record(ctx, "locate", r.Violation)
	s.deps.Logger.DebugContext(ctx, "Located coordinate",
		"coordinate", c.String(),
		"zone", r.Zone,
		"fieldPosition", r.FieldPosition,
	)
	return r
}

// Validate checks c against the regulation field and then against the
// configured one.
func (s *Service) Validate(ctx context.Context, c field.Coordinate) error {
	bv, outside := s.deps.Field.CheckBoundary(c)

	err := field.ValidateCoordinate(c)
	if err == nil && outside {
		err = fmt.Errorf("%w: %s of %s", field.ErrInvalidCoordinate, bv.Description(), s.deps.Field.Name)
	}

	var v *field.BoundaryViolation
	if outside {
		v = &bv
	}
	s.record(ctx, "validate", v)
	if err != nil {
		s.deps.Logger.InfoContext(ctx, "Coordinate rejected", "coordinate", c.String(), "error", err)
	}
	return err
}

// Trace summarizes the path through coords.
func (s *Service) Trace(ctx context.Context, coords []field.Coordinate) PathReport {
	f := s.deps.Field
	r := PathReport{
		Points:    len(coords),
		Length:    field.PathLength(coords),
		Contained: len(coords) > 0,
		FirstExit: -1,
	}
	if len(coords) == 1 {
		r.Contained = f.ContainsCoordinate(coords[0])
		if !r.Contained {
			r.FirstExit = 0
		}
	}
	for i := 0; i+1 < len(coords); i++ {
		if !f.ContainsLine(coords[i], coords[i+1]) {
			r.Contained = false
			r.FirstExit = i
			break
		}
	}
	if len(coords) >= 2 {
		r.WKT = field.PathLineString(coords).AsText()
	}

	var v *field.BoundaryViolation
	if !r.Contained {
		for _, c := range coords {
			if bv, ok := f.CheckBoundary(c); ok {
				v = &bv
				break
			}
		}
	}
	s.record(ctx, "trace", v)
	s.deps.Logger.DebugContext(ctx, "Traced path",
		"points", r.Points,
		"length", r.Length,
		"contained", r.Contained,
	)
	return r
}

// Transforms accepted by Transform.
var Transforms = []string{"mirrorx", "mirrory", "rotate180", "clamp", "spot", "feet", "meters"}

// Transform applies the named operation to c.
func (s *Service) Transform(ctx context.Context, op string, c field.Coordinate) (field.Coordinate, error) {
	var out field.Coordinate
	switch strings.ToLower(op) {
	case "mirrorx":
		out = c.MirrorX()
	case "mirrory":
		out = c.MirrorY()
	case "rotate180":
		out = c.Rotate180()
	case "clamp":
		out = s.deps.Field.Clamp(c)
	case "spot":
		out = s.deps.Field.SpotBall(c)
	case "feet":
		out = c.ToFeet()
	case "meters":
		out = c.ToMeters()
	default:
		return c, fmt.Errorf("%w %q, expected one of %s", ErrUnknownTransform, op, strings.Join(Transforms, ", "))
	}
	s.record(ctx, "transform", nil)
	return out, nil
}

func (s *Service) record(ctx context.Context, op string, v *field.BoundaryViolation) {
	opAttr := attribute.String("operation", op)
	s.queries.Add(ctx, 1, metric.WithAttributes(opAttr))
	if v != nil {
		s.violations.Add(ctx, 1, metric.WithAttributes(opAttr, attribute.String("boundary", v.String())))
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < field.BoundaryEpsilon && d > -field.BoundaryEpsilon
}
