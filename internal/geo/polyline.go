package geo

import (
	"encoding/json"
	"fmt"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
	geom "github.com/peterstace/simplefeatures/geom"
)

// ParsePath parses a JSON array of [x,y] pairs in yards.
// Input format: "[[x1,y1],[x2,y2],...]"
func ParsePath(input string) ([]field.Coordinate, error) {
	var coords [][]float32
	if err := json.Unmarshal([]byte(input), &coords); err != nil {
		return nil, fmt.Errorf("failed to parse path JSON: %w", err)
	}

	if len(coords) < 2 {
		return nil, fmt.Errorf("path must have at least 2 points, got %d", len(coords))
	}

	path := make([]field.Coordinate, len(coords))
	for i, coord := range coords {
		if len(coord) < 2 {
			return nil, fmt.Errorf("coordinate %d has insufficient values", i)
		}
		path[i] = field.NewCoordinate(coord[0], coord[1])
	}
	return path, nil
}

// ParsePathLineString parses the same format as ParsePath into a
// geom.LineString.
func ParsePathLineString(input string) (geom.LineString, error) {
	path, err := ParsePath(input)
	if err != nil {
		return geom.LineString{}, err
	}
	return field.PathLineString(path), nil
}
