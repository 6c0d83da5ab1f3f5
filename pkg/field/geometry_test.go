package field

import (
	"testing"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Point(t *testing.T) {
	c := NewCoordinate(12.5, 40)
	p := c.Point()

	xy, ok := p.XY()
	require.True(t, ok)
	assert.Equal(t, 12.5, xy.X)
	assert.Equal(t, 40.0, xy.Y)

	back, ok := CoordinateFromPoint(p)
	require.True(t, ok)
	assert.Equal(t, c, back)

	_, ok = CoordinateFromPoint(geom.NewEmptyPoint(geom.DimXY))
	assert.False(t, ok)
}

func TestField_Polygon(t *testing.T) {
	f, err := NewCustom(100, 50, 10)
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, f.Polygon().Area(), tolerance)
	assert.InDelta(t, 4000.0, f.PlayingPolygon().Area(), tolerance)
	assert.Equal(t, "POLYGON((0 0,50 0,50 100,0 100,0 0))", f.Polygon().AsText())
}

func TestPathLineString(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(0, 0),
		NewCoordinate(3, 4),
		NewCoordinate(3, 10),
	}

	ls := PathLineString(path)
	assert.Equal(t, 3, ls.Coordinates().Length())
	assert.InDelta(t, 11.0, PathLength(path), tolerance)

	assert.True(t, PathLineString(path[:1]).IsEmpty())
	assert.Equal(t, float32(0), PathLength(nil))
}
