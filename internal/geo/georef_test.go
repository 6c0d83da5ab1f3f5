package geo

import (
	"testing"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// southwest corner of a stadium in Green Bay
const (
	anchorLon = -88.0622
	anchorLat = 44.5013
)

func TestNewGeoref_RejectsBadAnchor(t *testing.T) {
	_, err := NewGeoref(200, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = NewGeoref(10, 89, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestGeoref_OriginIsAnchor(t *testing.T) {
	g, err := NewGeoref(anchorLon, anchorLat, 0)
	require.NoError(t, err)

	lon, lat := g.ToLonLat(field.NewCoordinate(0, 0))
	assert.InDelta(t, anchorLon, lon, 1e-7)
	assert.InDelta(t, anchorLat, lat, 1e-7)
}

func TestGeoref_NorthFacingField(t *testing.T) {
	g, err := NewGeoref(anchorLon, anchorLat, 0)
	require.NoError(t, err)

	// 100 yards = 91.44 m, about 0.000823 degrees of latitude
	lon, lat := g.ToLonLat(field.NewCoordinate(0, 100))
	assert.InDelta(t, anchorLon, lon, 1e-7)
	assert.InDelta(t, anchorLat+0.000823, lat, 1e-5)

	lon, lat = g.ToLonLat(field.NewCoordinate(50, 0))
	assert.Greater(t, lon, anchorLon)
	assert.InDelta(t, anchorLat, lat, 1e-7)
}

func TestGeoref_EastFacingField(t *testing.T) {
	g, err := NewGeoref(anchorLon, anchorLat, 90)
	require.NoError(t, err)

	lon, lat := g.ToLonLat(field.NewCoordinate(0, 100))
	assert.Greater(t, lon, anchorLon)
	assert.InDelta(t, anchorLat, lat, 1e-6)
}

func TestGeoref_RoundTrip(t *testing.T) {
	g, err := NewGeoref(anchorLon, anchorLat, 37)
	require.NoError(t, err)

	for _, c := range []field.Coordinate{
		field.NewCoordinate(0, 0),
		field.NewCoordinate(26.67, 60),
		field.NewCoordinate(field.FieldWidthYards, field.FieldLengthYards),
	} {
		lon, lat := g.ToLonLat(c)
		back := g.FromLonLat(lon, lat)
		assert.True(t, back.ApproxEqual(c, 0.01), "%v -> %v", c, back)
	}
}

func TestGeoref_Outline(t *testing.T) {
	g, err := NewGeoref(anchorLon, anchorLat, 0)
	require.NoError(t, err)

	outline := g.Outline(field.New())
	require.Len(t, outline, 4)
	assert.InDelta(t, anchorLon, outline[0][0], 1e-7)
	assert.Greater(t, outline[2][1], outline[1][1])

	_, ok := g.Point3857(field.NewCoordinate(0, 0)).XY()
	assert.True(t, ok)
}
