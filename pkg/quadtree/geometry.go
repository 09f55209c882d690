package quadtree

import "fmt"

// Point is a single coordinate in the integer plane.
type Point struct {
	X, Y int32
}

// Rect is an axis-aligned rectangle with integer bounds. Y grows upward, so
// Left <= Right and Bottom <= Top.
type Rect struct {
	Left, Right, Top, Bottom int32
}

// FromPoints builds the smallest Rect containing both p1 and p2, normalising
// whichever coordinates arrive in the "wrong" order.
func FromPoints(p1, p2 Point) Rect {
	return Rect{
		Left:   min32(p1.X, p2.X),
		Right:  max32(p1.X, p2.X),
		Top:    max32(p1.Y, p2.Y),
		Bottom: min32(p1.Y, p2.Y),
	}
}

// NewRect builds a Rect from an origin point and a width/height. w and h must
// be >= 0.
func NewRect(x, y, w, h int32) Rect {
	return Rect{
		Left:   x,
		Right:  x + w,
		Top:    y,
		Bottom: y - h,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d %d %d %d]", r.Left, r.Right, r.Top, r.Bottom)
}

func (r Rect) middle() Point {
	mx := (r.Right-r.Left)/2 + r.Left
	my := (r.Top-r.Bottom)/2 + r.Bottom
	return Point{X: mx, Y: my}
}

// Intersects reports whether r and other share at least one point, inclusive
// of shared edges.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right && r.Right >= other.Left &&
		r.Top >= other.Bottom && r.Bottom <= other.Top
}

// quadrant indices, in the fixed order every four-child block in this
// package is stored: top-left, top-right, bottom-left, bottom-right.
const (
	quadTL = 0
	quadTR = 1
	quadBL = 2
	quadBR = 3
)

// Quarters returns the four child rectangles of r, in TL, TR, BL, BR order.
// The midpoint is computed with integer division (see Rect.middle), biasing
// the split toward the lower-left cell; this bias is self-consistent across
// every recursive subdivision.
func (r Rect) Quarters() [4]Rect {
	mid := r.middle()
	return [4]Rect{
		quadTL: FromPoints(mid, Point{X: r.Left, Y: r.Top}),
		quadTR: FromPoints(mid, Point{X: r.Right, Y: r.Top}),
		quadBL: FromPoints(mid, Point{X: r.Left, Y: r.Bottom}),
		quadBR: FromPoints(mid, Point{X: r.Right, Y: r.Bottom}),
	}
}

// ElementQuadLocations reports, for each of the four quadrants of parent, in
// TL, TR, BL, BR order, whether child intersects that quadrant. Boundary
// rectangles on the centre cross-hair are inclusive and may intersect more
// than one quadrant.
func ElementQuadLocations(parent, child Rect) [4]bool {
	mid := parent.middle()

	tl := child.Left <= mid.X && child.Right >= parent.Left &&
		child.Top >= mid.Y && child.Bottom <= parent.Top

	tr := child.Right >= mid.X && child.Left <= parent.Right &&
		child.Top >= mid.Y && child.Bottom <= parent.Top

	bl := child.Left <= mid.X && child.Right >= parent.Left &&
		child.Bottom <= mid.Y && child.Top >= parent.Bottom

	br := child.Right >= mid.X && child.Left <= parent.Right &&
		child.Bottom <= mid.Y && child.Top >= parent.Bottom

	return [4]bool{tl, tr, bl, br}
}

// PointQuadLocations is the degenerate, point-sized form of
// ElementQuadLocations: a point lying exactly on the midline belongs to both
// (or all four) adjacent quadrants.
func PointQuadLocations(parent Rect, p Point) [4]bool {
	mid := parent.middle()

	tl := p.X <= mid.X && p.X >= parent.Left && p.Y >= mid.Y && p.Y <= parent.Top
	tr := p.X >= mid.X && p.X <= parent.Right && p.Y >= mid.Y && p.Y <= parent.Top
	bl := p.X <= mid.X && p.X >= parent.Left && p.Y <= mid.Y && p.Y >= parent.Bottom
	br := p.X >= mid.X && p.X <= parent.Right && p.Y <= mid.Y && p.Y >= parent.Bottom

	return [4]bool{tl, tr, bl, br}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
