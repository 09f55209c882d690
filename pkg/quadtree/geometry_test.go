package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rootRect() Rect {
	return FromPoints(Point{X: -128, Y: -128}, Point{X: 128, Y: 128})
}

func TestFromPoints_Normalises(t *testing.T) {
	r := FromPoints(Point{X: 20, Y: -10}, Point{X: -10, Y: 20})
	assert.Equal(t, Rect{Left: -10, Right: 20, Top: 20, Bottom: -10}, r)
}

func TestNewRect(t *testing.T) {
	r := NewRect(5, 5, 1, 1)
	assert.Equal(t, Rect{Left: 5, Right: 6, Top: 5, Bottom: 4}, r)
}

func TestIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	c := NewRect(20, 20, 1, 1)

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
}

func TestQuarters_AgreeWithIntersects(t *testing.T) {
	root := rootRect()
	quads := root.Quarters()

	candidates := []Rect{
		NewRect(10, 10, 1, 1),
		NewRect(-10, 10, 1, 1),
		NewRect(-10, -10, 1, 1),
		NewRect(10, -10, 1, 1),
		FromPoints(Point{X: -10, Y: -10}, Point{X: 20, Y: 20}),
	}

	for _, rect := range candidates {
		locations := ElementQuadLocations(root, rect)
		for i := 0; i < 4; i++ {
			assert.Equal(t, quads[i].Intersects(rect), locations[i], "quad %d for rect %v", i, rect)
		}
	}
}

// A rect spanning all four quadrants.
func TestElementQuadLocations_AllFour(t *testing.T) {
	root := rootRect()
	elementRect := FromPoints(Point{X: -10, Y: -10}, Point{X: 20, Y: 20})

	locations := ElementQuadLocations(root, elementRect)
	assert.Equal(t, [4]bool{true, true, true, true}, locations)
}

// A rect confined to TL.
func TestElementQuadLocations_TLOnly(t *testing.T) {
	root := rootRect()
	elementRect := FromPoints(Point{X: -10, Y: 10}, Point{X: -20, Y: 20})

	locations := ElementQuadLocations(root, elementRect)
	assert.Equal(t, [4]bool{true, false, false, false}, locations)
}

func TestElementQuadLocations_TROnly(t *testing.T) {
	root := rootRect()
	elementRect := FromPoints(Point{X: 10, Y: 10}, Point{X: 20, Y: 20})

	locations := ElementQuadLocations(root, elementRect)
	assert.Equal(t, [4]bool{false, true, false, false}, locations)
}

func TestElementQuadLocations_BLOnly(t *testing.T) {
	root := rootRect()
	elementRect := FromPoints(Point{X: -10, Y: -10}, Point{X: -20, Y: -20})

	locations := ElementQuadLocations(root, elementRect)
	assert.Equal(t, [4]bool{false, false, true, false}, locations)
}

func TestElementQuadLocations_BROnly(t *testing.T) {
	root := rootRect()
	elementRect := FromPoints(Point{X: 10, Y: -10}, Point{X: 20, Y: -20})

	locations := ElementQuadLocations(root, elementRect)
	assert.Equal(t, [4]bool{false, false, false, true}, locations)
}

// A point lying exactly on the midline is reported for every adjacent
// quadrant.
func TestPointQuadLocations_MidlineIsInclusive(t *testing.T) {
	root := rootRect()

	center := PointQuadLocations(root, Point{X: 0, Y: 0})
	assert.Equal(t, [4]bool{true, true, true, true}, center)

	topEdge := PointQuadLocations(root, Point{X: 0, Y: 128})
	assert.True(t, topEdge[quadTL])
	assert.True(t, topEdge[quadTR])
	assert.False(t, topEdge[quadBL])
	assert.False(t, topEdge[quadBR])
}
