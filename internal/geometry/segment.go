package geometry

import (
	"fmt"
	"iter"
	"math"
)

// Segment is a directed, axis-aligned line segment.
type Segment struct {
	Start Point
	End   Point
}

// NewSegment returns the segment from start to end. It fails unless the
// points lie on a common row or column.
func NewSegment(start, end Point) (Segment, bool) {
	if !Aligned(start, end) {
		return Segment{}, false
	}
	return Segment{Start: start, End: end}, true
}

func (s Segment) Vertical() bool {
	return s.Start.X == s.End.X
}

func (s Segment) Horizontal() bool {
	return s.Start.Y == s.End.Y
}

// Direction returns the direction of travel from Start to End.
func (s Segment) Direction() Direction {
	d := s.End.Sub(s.Start)
	switch {
	case d.X == 0 && d.Y > 0:
		return Down
	case d.X == 0 && d.Y < 0:
		return Up
	case d.Y == 0 && d.X > 0:
		return Right
	case d.Y == 0 && d.X < 0:
		return Left
	default:
		return None
	}
}

// Length is the number of unit steps between Start and End.
func (s Segment) Length() int64 {
	return abs(int64(s.End.X)-int64(s.Start.X)) + abs(int64(s.End.Y)-int64(s.Start.Y))
}

// Reversed returns the segment from End to Start.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Collinear reports whether p lies on the infinite line through s.
func (s Segment) Collinear(p Point) bool {
	return collinear(s.Start, s.End, p)
}

func collinear(a, b, c Point) bool {
	return (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
}

// Contains reports whether p lies on s, endpoints included.
func (s Segment) Contains(p Point) bool {
	switch {
	case s.Start.X == s.End.X && s.End.X == p.X:
		lo, hi := minMax(s.Start.Y, s.End.Y)
		return lo <= p.Y && p.Y <= hi
	case s.Start.Y == s.End.Y && s.End.Y == p.Y:
		lo, hi := minMax(s.Start.X, s.End.X)
		return lo <= p.X && p.X <= hi
	default:
		return false
	}
}

// PointOnSide returns the sign of the cross product of p against the
// directed segment: negative on the right, positive on the left and zero
// when p is collinear.
func (s Segment) PointOnSide(p Point) int {
	px, py := int64(p.X)-int64(s.Start.X), int64(p.Y)-int64(s.Start.Y)
	ex, ey := int64(s.End.X)-int64(s.Start.X), int64(s.End.Y)-int64(s.Start.Y)
	return sign(px*ey - py*ex)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}

// IntersectionKind tells which field of an Intersection is meaningful.
type IntersectionKind int

const (
	IntersectionPoint IntersectionKind = iota
	IntersectionOverlap
)

// Intersection is either a single point or a collinear overlap.
type Intersection struct {
	Kind    IntersectionKind
	Point   Point
	Overlap Segment
}

// Anchor returns the intersection point, or the start of the overlap.
func (i Intersection) Anchor() Point {
	if i.Kind == IntersectionOverlap {
		return i.Overlap.Start
	}
	return i.Point
}

func (i Intersection) String() string {
	if i.Kind == IntersectionOverlap {
		return "overlap " + i.Overlap.String()
	}
	return "point " + i.Point.String()
}

// Intersection intersects the x and y projections of both segments
// independently. Touching endpoints and collinear overlaps are treated
// alike; an overlap always runs from its lower to its higher coordinate.
func (s Segment) Intersection(other Segment) (Intersection, bool) {
	xlo, xhi, ok := intervalOverlap(s.Start.X, s.End.X, other.Start.X, other.End.X)
	if !ok {
		return Intersection{}, false
	}
	ylo, yhi, ok := intervalOverlap(s.Start.Y, s.End.Y, other.Start.Y, other.End.Y)
	if !ok {
		return Intersection{}, false
	}

	switch {
	case xlo == xhi && ylo == yhi:
		return Intersection{Kind: IntersectionPoint, Point: Pt(xlo, ylo)}, true
	case xlo == xhi:
		return Intersection{
			Kind:    IntersectionOverlap,
			Overlap: Segment{Start: Pt(xlo, ylo), End: Pt(xlo, yhi)},
		}, true
	default:
		// Two axis-aligned segments cannot overlap in both dimensions.
		return Intersection{
			Kind:    IntersectionOverlap,
			Overlap: Segment{Start: Pt(xlo, ylo), End: Pt(xhi, ylo)},
		}, true
	}
}

func (s Segment) Intersects(other Segment) bool {
	_, ok := s.Intersection(other)
	return ok
}

// Ray returns the segment from origin to the last representable
// coordinate in direction d.
func Ray(origin Point, d Direction) Segment {
	end := origin
	switch d {
	case Up:
		end.Y = math.MinInt32
	case Down:
		end.Y = math.MaxInt32
	case Left:
		end.X = math.MinInt32
	case Right:
		end.X = math.MaxInt32
	}
	return Segment{Start: origin, End: end}
}

// RayIntersection intersects s with the half-line cast from origin in
// direction d.
func (s Segment) RayIntersection(origin Point, d Direction) (Intersection, bool) {
	return s.Intersection(Ray(origin, d))
}

func (s Segment) IntersectsRay(origin Point, d Direction) bool {
	_, ok := s.RayIntersection(origin, d)
	return ok
}

func intervalOverlap(a0, a1, b0, b1 int32) (int32, int32, bool) {
	a0, a1 = minMax(a0, a1)
	b0, b1 = minMax(b0, b1)
	lo := max(a0, b0)
	hi := min(a1, b1)
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// IntersectionsBetween returns every intersection between a segment of b
// and a segment of a, in b-major order. Results equal to the one reported
// just before them are dropped.
func IntersectionsBetween(a, b iter.Seq[Segment]) []Intersection {
	var out []Intersection
	for sb := range b {
		for sa := range a {
			ix, ok := sa.Intersection(sb)
			if !ok {
				continue
			}
			if n := len(out); n > 0 && out[n-1] == ix {
				continue
			}
			out = append(out, ix)
		}
	}
	return out
}

// AnyIntersection reports whether some segment of a meets some segment of b.
func AnyIntersection(a, b iter.Seq[Segment]) bool {
	for sb := range b {
		for sa := range a {
			if sa.Intersects(sb) {
				return true
			}
		}
	}
	return false
}
