package geometry

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Polygon is a simple rectilinear polygon. The last vertex is joined back
// to the first by an implicit closing edge. The zero value is the empty
// polygon.
type Polygon struct {
	vertices []Point
}

// NewPolygon validates path as the vertex cycle of a polygon. A last vertex
// lying on the closing edge is dropped. path is not modified.
func NewPolygon(path *Path) (Polygon, error) {
	if path == nil {
		return Polygon{}, nil
	}
	vertices := path.Points()
	if len(vertices) == 0 {
		return Polygon{}, nil
	}
	if len(vertices) < 4 {
		return Polygon{}, ErrNotEnoughVertices
	}

	first, last := vertices[0], vertices[len(vertices)-1]
	if !Aligned(last, first) {
		return Polygon{}, fmt.Errorf("closing edge %v->%v: %w", last, first, ErrNotRectilinear)
	}
	if collinear(last, first, vertices[len(vertices)-2]) {
		vertices = vertices[:len(vertices)-1]
	}

	if err := validateVertices(vertices); err != nil {
		return Polygon{}, err
	}
	return Polygon{vertices: vertices}, nil
}

func validateVertices(vertices []Point) error {
	if len(vertices) < 4 {
		return ErrNotEnoughVertices
	}
	closing := Segment{Start: vertices[len(vertices)-1], End: vertices[0]}
	// The first and the last segment meet the closing edge at its ends.
	for seg := range Skip(SkipLast(segmentsOf(vertices)), 1) {
		if seg.Intersects(closing) {
			return fmt.Errorf("%v crosses closing edge %v: %w", seg, closing, ErrSelfIntersecting)
		}
	}
	return nil
}

// PolygonFromPoints builds a path from points and validates it.
func PolygonFromPoints(points ...Point) (Polygon, error) {
	path, err := PathFromPoints(points...)
	if err != nil {
		return Polygon{}, err
	}
	return NewPolygon(path)
}

// Vertices returns a copy of the vertex cycle.
func (p Polygon) Vertices() []Point {
	return slices.Clone(p.vertices)
}

func (p Polygon) Len() int {
	return len(p.vertices)
}

func (p Polygon) IsEmpty() bool {
	return len(p.vertices) == 0
}

// Path returns the vertex cycle as an open path.
func (p Polygon) Path() *Path {
	return &Path{points: slices.Clone(p.vertices)}
}

// Edges yields the path segments followed by the closing edge.
func (p Polygon) Edges() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if len(p.vertices) == 0 {
			return
		}
		for seg := range segmentsOf(p.vertices) {
			if !yield(seg) {
				return
			}
		}
		yield(Segment{Start: p.vertices[len(p.vertices)-1], End: p.vertices[0]})
	}
}

func (p Polygon) edge(i int) Segment {
	n := len(p.vertices)
	i = ((i % n) + n) % n
	return Segment{Start: p.vertices[i], End: p.vertices[(i+1)%n]}
}

// Area returns the enclosed area using the shoelace formula.
func (p Polygon) Area() int64 {
	n := len(p.vertices)
	var twice int64
	for i, v := range p.vertices {
		w := p.vertices[(i+1)%n]
		twice += int64(v.X)*int64(w.Y) - int64(v.Y)*int64(w.X)
	}
	return abs(twice) / 2
}

// BoundaryIndex returns one past the index of the first edge containing
// point, modulo the vertex count. A point on the closing edge has index 0.
func (p Polygon) BoundaryIndex(point Point) (int, bool) {
	i := 0
	for seg := range p.Edges() {
		i++
		if seg.Contains(point) {
			return i % len(p.vertices), true
		}
	}
	return 0, false
}

func (p Polygon) OnBoundary(point Point) bool {
	_, ok := p.BoundaryIndex(point)
	return ok
}

// ContainsStrictly reports whether point is in the interior of p using the
// non-zero winding rule on a ray cast to the right. Boundary points are not
// inside.
func (p Polygon) ContainsStrictly(point Point) bool {
	var sides []int
	for seg := range p.Edges() {
		if seg.Contains(point) {
			return false
		}
		if seg.IntersectsRay(point, Right) {
			sides = append(sides, seg.PointOnSide(point))
		}
	}
	return windingSum(reduceSides(sides)) != 0
}

// IntersectionsWith intersects every edge of p with every segment of edges.
func (p Polygon) IntersectionsWith(edges iter.Seq[Segment]) []Intersection {
	return IntersectionsBetween(p.Edges(), edges)
}

func (p Polygon) IntersectionsWithPath(path *Path) []Intersection {
	return p.IntersectionsWith(path.Segments())
}

func (p Polygon) IntersectsPath(path *Path) bool {
	return AnyIntersection(p.Edges(), path.Segments())
}

func (p Polygon) IntersectsSegment(seg Segment) bool {
	for edge := range p.Edges() {
		if edge.Intersects(seg) {
			return true
		}
	}
	return false
}

// IsClockwise reports the orientation of the vertex cycle on screen
// (y down), judged at the lexicographically smallest vertex.
func (p Polygon) IsClockwise() bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	m := 0
	for i, v := range p.vertices {
		lo := p.vertices[m]
		if v.X < lo.X || (v.X == lo.X && v.Y < lo.Y) {
			m = i
		}
	}
	prev := p.vertices[(m-1+n)%n]
	next := p.vertices[(m+1)%n]
	return Segment{Start: prev, End: p.vertices[m]}.PointOnSide(next) < 0
}

// Cut splits p along path into two polygons. The ends of path must lie on
// the boundary of p and everything between them strictly inside. The
// first result keeps the vertices of p outside the cut's span. Neither p
// nor path is modified.
func (p Polygon) Cut(path *Path) (Polygon, Polygon, bool) {
	pts := path.Points()
	if len(pts) < 2 || len(p.vertices) < 4 {
		return Polygon{}, Polygon{}, false
	}

	for _, pt := range pts[1 : len(pts)-1] {
		if !p.ContainsStrictly(pt) {
			return Polygon{}, Polygon{}, false
		}
	}
	inner := Skip(SkipLast(segmentsOf(pts)), 1)
	if AnyIntersection(p.Edges(), inner) {
		return Polygon{}, Polygon{}, false
	}

	start, end := pts[0], pts[len(pts)-1]
	startIdx, ok := p.BoundaryIndex(start)
	if !ok {
		return Polygon{}, Polygon{}, false
	}
	endIdx, ok := p.BoundaryIndex(end)
	if !ok {
		return Polygon{}, Polygon{}, false
	}

	if len(pts) == 2 && !p.straightCutInside(startIdx, end) {
		return Polygon{}, Polygon{}, false
	}

	reverse := startIdx > endIdx
	if startIdx == endIdx {
		from := p.vertices[(startIdx-1+len(p.vertices))%len(p.vertices)]
		if p.edge(startIdx-1).Vertical() {
			reverse = abs(from.Y-start.Y) > abs(from.Y-end.Y)
		} else {
			reverse = abs(from.X-start.X) > abs(from.X-end.X)
		}
	}

	lo, hi := startIdx, endIdx
	if reverse {
		lo, hi = endIdx, startIdx
		slices.Reverse(pts)
	}

	first := make([]Point, 0, len(p.vertices)+len(pts))
	first = append(first, p.vertices[:lo]...)
	first = append(first, pts...)
	first = append(first, p.vertices[hi:]...)

	back := slices.Clone(pts)
	slices.Reverse(back)
	second := append(back, p.vertices[lo:hi]...)

	a, err := PolygonFromPoints(openCycle(first)...)
	if err != nil {
		return Polygon{}, Polygon{}, false
	}
	b, err := PolygonFromPoints(openCycle(second)...)
	if err != nil {
		return Polygon{}, Polygon{}, false
	}
	return a, b, true
}

// openCycle drops trailing repeats of the first point. A piece that
// starts at vertex 0 is assembled back onto that vertex.
func openCycle(points []Point) []Point {
	for len(points) > 1 && points[len(points)-1] == points[0] {
		points = points[:len(points)-1]
	}
	return points
}

// straightCutInside checks that a two point cut starting on the edge
// before startIdx runs through the interior rather than outside a notch.
func (p Polygon) straightCutInside(startIdx int, end Point) bool {
	side := p.edge(startIdx - 1).PointOnSide(end)
	if side == 0 {
		side = p.edge(startIdx).PointOnSide(end)
	}
	if p.IsClockwise() {
		return side == -1
	}
	return side == 1
}

// Equal reports whether p and other bound the same region. Vertex order,
// starting vertex, orientation and collinear vertices are ignored.
func (p Polygon) Equal(other Polygon) bool {
	a := simplifyCycle(p.vertices)
	b := simplifyCycle(other.vertices)
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}

	offset := slices.Index(b, a[0])
	if offset < 0 {
		return false
	}

	forward, backward := true, true
	for i := range n {
		if a[i] != b[(offset+i)%n] {
			forward = false
		}
		if a[i] != b[(offset-i+n)%n] {
			backward = false
		}
	}
	return forward || backward
}

// simplifyCycle drops vertices collinear with their cyclic neighbours
// until none are left.
func simplifyCycle(vertices []Point) []Point {
	out := slices.Clone(vertices)
	for changed := true; changed && len(out) >= 3; {
		changed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			n := len(out)
			if collinear(out[(i-1+n)%n], out[i], out[(i+1)%n]) {
				out = slices.Delete(out, i, i+1)
				changed = true
				i--
			}
		}
	}
	return out
}

// Bounds returns the smallest and largest corners of the bounding box.
func (p Polygon) Bounds() (Point, Point) {
	if len(p.vertices) == 0 {
		return Point{}, Point{}
	}
	lo, hi := p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
	}
	return lo, hi
}

func (p Polygon) String() string {
	var b strings.Builder
	b.WriteString("polygon[")
	for i, v := range p.vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}
