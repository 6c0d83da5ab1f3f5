package geo

import (
	"fmt"
	"math"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

const (
	epsgWGS84       = 4326
	epsgWebMercator = 3857
)

// Georef anchors a field's southwest corner at a WGS84 position. Bearing is
// the compass direction, in degrees clockwise from true north, that the
// field's +Y axis points to.
type Georef struct {
	Longitude float64
	Latitude  float64
	Bearing   float64

	toMercator   func(a, b, c float64) (float64, float64, float64)
	fromMercator func(a, b, c float64) (float64, float64, float64)
	anchorX      float64
	anchorY      float64
	scale        float64
}

// NewGeoref validates the anchor and precomputes its Web Mercator position.
func NewGeoref(longitude, latitude, bearing float64) (*Georef, error) {
	if math.Abs(longitude) > 180 || math.Abs(latitude) >= 85 {
		return nil, fmt.Errorf("%w: anchor %v,%v", ErrInvalidCoordinates, longitude, latitude)
	}
	epsg := wgs84.EPSG()
	g := &Georef{
		Longitude:    longitude,
		Latitude:     latitude,
		Bearing:      bearing,
		toMercator:   epsg.Transform(epsgWGS84, epsgWebMercator),
		fromMercator: epsg.Transform(epsgWebMercator, epsgWGS84),
		// Web Mercator stretches ground distances by 1/cos(lat)
		scale: 1 / math.Cos(latitude*math.Pi/180),
	}
	g.anchorX, g.anchorY, _ = g.toMercator(longitude, latitude, 0)
	return g, nil
}

// Mercator returns c projected to EPSG:3857 meters.
func (g *Georef) Mercator(c field.Coordinate) (x, y float64) {
	m := c.ToMeters()
	sin, cos := math.Sincos(g.Bearing * math.Pi / 180)
	east := float64(m.X)*cos + float64(m.Y)*sin
	north := -float64(m.X)*sin + float64(m.Y)*cos
	return g.anchorX + east*g.scale, g.anchorY + north*g.scale
}

// ToLonLat returns the WGS84 position of c.
func (g *Georef) ToLonLat(c field.Coordinate) (longitude, latitude float64) {
	x, y := g.Mercator(c)
	longitude, latitude, _ = g.fromMercator(x, y, 0)
	return longitude, latitude
}

// FromLonLat returns the field coordinate of a WGS84 position.
func (g *Georef) FromLonLat(longitude, latitude float64) field.Coordinate {
	x, y, _ := g.toMercator(longitude, latitude, 0)
	east := (x - g.anchorX) / g.scale
	north := (y - g.anchorY) / g.scale
	sin, cos := math.Sincos(g.Bearing * math.Pi / 180)
	mx := east*cos - north*sin
	my := east*sin + north*cos
	return field.FromMeters(float32(mx), float32(my))
}

// Point3857 returns c as a Web Mercator point, the projection used when
// positions are stored as geometry.
func (g *Georef) Point3857(c field.Coordinate) geom.Point {
	x, y := g.Mercator(c)
	return geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: x, Y: y},
		Type: geom.DimXY,
	})
}

// Outline returns the corners of f in WGS84, counter-clockwise from the
// southwest corner, as "lon,lat" pairs.
func (g *Georef) Outline(f *field.Field) [][2]float64 {
	corners := []field.Coordinate{
		field.NewCoordinate(f.West, f.South),
		field.NewCoordinate(f.East, f.South),
		field.NewCoordinate(f.East, f.North),
		field.NewCoordinate(f.West, f.North),
	}
	out := make([][2]float64, len(corners))
	for i, c := range corners {
		lon, lat := g.ToLonLat(c)
		out[i] = [2]float64{lon, lat}
	}
	return out
}
