package geometry

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Path is an open rectilinear polyline that repairs itself on Append.
// Consecutive points are always aligned, no three consecutive points are
// collinear, and revisiting an earlier segment truncates the loop away.
type Path struct {
	points []Point
}

func NewPath() *Path {
	return &Path{}
}

// NewPathFrom returns a path holding the single point start.
func NewPathFrom(start Point) *Path {
	return &Path{points: []Point{start}}
}

// PathFromPoints feeds every point through Append in order.
func PathFromPoints(points ...Point) (*Path, error) {
	p := &Path{points: make([]Point, 0, len(points))}
	for i, pt := range points {
		if err := p.Append(pt); err != nil {
			return nil, fmt.Errorf("point %d %v: %w", i, pt, err)
		}
	}
	return p, nil
}

// Append extends the path to point.
//
// If the new segment crosses an earlier segment, the first crossing found
// from the start of the path becomes an intermediate point and everything
// after it is dropped. Each added point then truncates any loop it closes
// and replaces a last point it would make redundant.
func (p *Path) Append(point Point) error {
	if len(p.points) == 0 {
		p.points = append(p.points, point)
		return nil
	}

	last := p.points[len(p.points)-1]
	if last == point {
		return nil
	}
	if !Aligned(last, point) {
		return ErrNotRectilinear
	}

	candidate := Segment{Start: last, End: point}
	toAdd := []Point{point}
	for seg := range SkipLast(p.Segments()) {
		ix, ok := seg.Intersection(candidate)
		if !ok {
			continue
		}
		if anchor := ix.Anchor(); anchor != point {
			toAdd = []Point{anchor, point}
		}
		break
	}

	for _, pt := range toAdd {
		p.push(pt)
	}
	return nil
}

func (p *Path) push(pt Point) {
	if idx, ok := p.InsertionIndex(pt); ok {
		p.points = p.points[:idx]
		// A loop back onto the first point leaves only that point.
		if p.points[len(p.points)-1] == pt {
			return
		}
	}
	if n := len(p.points); n >= 2 && collinear(p.points[n-2], p.points[n-1], pt) {
		p.points = p.points[:n-1]
	}
	p.points = append(p.points, pt)
}

// InsertionIndex returns one past the index of the first segment that
// contains point.
func (p *Path) InsertionIndex(point Point) (int, bool) {
	i := 0
	for seg := range p.Segments() {
		i++
		if seg.Contains(point) {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether point lies on any segment of the path.
func (p *Path) Contains(point Point) bool {
	_, ok := p.InsertionIndex(point)
	return ok
}

// Points returns a copy of the path's points.
func (p *Path) Points() []Point {
	return slices.Clone(p.points)
}

func (p *Path) Len() int {
	return len(p.points)
}

func (p *Path) IsEmpty() bool {
	return len(p.points) == 0
}

func (p *Path) First() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[0], true
}

func (p *Path) Last() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// Segments yields the segments between consecutive points.
func (p *Path) Segments() iter.Seq[Segment] {
	return segmentsOf(p.points)
}

func (p *Path) Clone() *Path {
	return &Path{points: slices.Clone(p.points)}
}

// Reversed rebuilds the path from its points in reverse order.
func (p *Path) Reversed() (*Path, error) {
	pts := slices.Clone(p.points)
	slices.Reverse(pts)
	return PathFromPoints(pts...)
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, pt := range p.points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pt.String())
	}
	b.WriteByte(']')
	return b.String()
}
