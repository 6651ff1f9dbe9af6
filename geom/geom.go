// Package geom defines the integer 2D primitives shared by every stage of
// the path splitter. Coordinates use the fixed-point integer convention
// the external clipping library also uses, so paths can cross package
// boundaries without repeated conversion.
package geom

// Point is a 2D point in fixed-point integer coordinates.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Path is an ordered sequence of points; it may represent an open polyline
// or, when paired with a closedness flag carried alongside it, a polygon.
type Path []Point

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Paths is a collection of independent paths.
type Paths []Path

// Rect is an axis-aligned rectangle stored as its SW and NE corners, the
// convention used by the splitter's per-cell windows (§3: corners in order
// [SW, SE, NE, NW], but only SW/NE are needed for containment and bounds
// arithmetic so callers work with the pair directly).
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Corners returns the four corners in [SW, SE, NE, NW] order, the order
// AsPath hands to the clipper adapter as a clip window.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}
}

// AsPath returns the rectangle as a closed 4-point path in [SW, SE, NE, NW]
// order, suitable for use as a clip window.
func (r Rect) AsPath() Path {
	c := r.Corners()
	return Path{c[0], c[1], c[2], c[3]}
}
