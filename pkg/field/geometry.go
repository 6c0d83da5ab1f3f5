package field

import (
	geom "github.com/peterstace/simplefeatures/geom"
)

// Geometry adapters for consumers that work with simple features (WKT/WKB,
// spatial predicates). Values are widened to float64.

// Point returns c as a 2D point.
func (c Coordinate) Point() geom.Point {
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: float64(c.X), Y: float64(c.Y)},
		Type: geom.DimXY,
	})
}

// CoordinateFromPoint narrows a point back to a Coordinate. It reports
// false for an empty point.
func CoordinateFromPoint(p geom.Point) (Coordinate, bool) {
	xy, ok := p.XY()
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{X: float32(xy.X), Y: float32(xy.Y)}, true
}

// Polygon returns the field outline, end zones included.
func (f *Field) Polygon() geom.Polygon {
	return rectangle(f.West, f.South, f.East, f.North)
}

// PlayingPolygon returns the outline of the area between the goal lines.
func (f *Field) PlayingPolygon() geom.Polygon {
	return rectangle(f.West, f.South+f.EndzoneLength, f.East, f.North-f.EndzoneLength)
}

func rectangle(minX, minY, maxX, maxY float32) geom.Polygon {
	x0, y0, x1, y1 := float64(minX), float64(minY), float64(maxX), float64(maxY)
	ring := geom.NewLineString(geom.NewSequence([]float64{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y1,
		x0, y0,
	}, geom.DimXY))
	return geom.NewPolygon([]geom.LineString{ring})
}

// PathLineString returns the path through coords as a line string. Fewer
// than two coordinates yield an empty line string.
func PathLineString(coords []Coordinate) geom.LineString {
	if len(coords) < 2 {
		return geom.LineString{}
	}
	flat := make([]float64, 0, len(coords)*2)
	for _, c := range coords {
		flat = append(flat, float64(c.X), float64(c.Y))
	}
	return geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
}

// PathLength returns the total length of the path through coords in yards.
func PathLength(coords []Coordinate) float32 {
	return float32(PathLineString(coords).Length())
}
