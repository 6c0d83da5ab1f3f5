// Package geo parses field positions from text and places fields on the globe.
package geo

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
)

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// ParseCoordinate parses "x,y" in yards into a field.Coordinate. Surrounding
// whitespace and parentheses are ignored. The result is not range checked.
func ParseCoordinate(s string) (field.Coordinate, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return field.Coordinate{}, ErrInvalidCoordinates
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return field.Coordinate{}, ErrInvalidCoordinates
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return field.Coordinate{}, ErrInvalidCoordinates
	}
	return field.NewCoordinate(float32(x), float32(y)), nil
}

// FormatCoordinate is the inverse of ParseCoordinate.
func FormatCoordinate(c field.Coordinate) string {
	return strconv.FormatFloat(float64(c.X), 'f', -1, 32) + "," +
		strconv.FormatFloat(float64(c.Y), 'f', -1, 32)
}
