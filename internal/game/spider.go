package game

import "github.com/Ko-stant/spider-field/internal/geometry"

// Spider is the player. It walks the border of the free region and leaves
// a trail while it is inside.
type Spider struct {
	dir   geometry.Direction
	pos   geometry.Point
	trail *geometry.Path
}

func NewSpider(pos geometry.Point, dir geometry.Direction) *Spider {
	return &Spider{pos: pos, dir: dir}
}

func (s *Spider) Direction() geometry.Direction {
	return s.dir
}

func (s *Spider) SetDirection(dir geometry.Direction) {
	s.dir = dir
}

func (s *Spider) Position() geometry.Point {
	return s.pos
}

// StartTrail begins a new trail at the current position, dropping any
// unfinished one.
func (s *Spider) StartTrail() {
	s.trail = geometry.NewPathFrom(s.pos)
}

// StopTrail hands over the current trail. It reports false when the spider
// was not tracing.
func (s *Spider) StopTrail() (*geometry.Path, bool) {
	trail := s.trail
	s.trail = nil
	return trail, trail != nil
}

func (s *Spider) Tracing() bool {
	return s.trail != nil
}

// Trail returns the trail in progress, or nil.
func (s *Spider) Trail() *geometry.Path {
	return s.trail
}

// Update moves the spider one step. A step that would leave the free
// polygon or its border is refused and Update reports false.
func (s *Spider) Update(free geometry.Polygon) bool {
	if s.dir == geometry.None {
		return false
	}
	next := s.pos.Add(s.dir.Delta())
	if !free.ContainsStrictly(next) && !free.OnBoundary(next) {
		return false
	}
	if s.trail != nil {
		if err := s.trail.Append(next); err != nil {
			return false
		}
	}
	s.pos = next
	return true
}
