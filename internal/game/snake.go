package game

import (
	"math/rand/v2"

	"github.com/Ko-stant/spider-field/internal/geometry"
)

// chaseChance is the probability that a snake hunting a tracing spider
// picks the step closest to it.
const chaseChance = 0.5

// Snake wanders the interior of the free region.
type Snake struct {
	pos geometry.Point
	rng *rand.Rand
}

func NewSnake(pos geometry.Point, rng *rand.Rand) *Snake {
	return &Snake{pos: pos, rng: rng}
}

func (s *Snake) Position() geometry.Point {
	return s.pos
}

// NextStep picks a direction that keeps the snake strictly inside the free
// polygon. While the spider is tracing, the snake sometimes heads for the
// nearest point of the trail. None means the snake is boxed in.
func (s *Snake) NextStep(field *Field, spider *Spider) geometry.Direction {
	free := field.FreePolygon()
	var options []geometry.Direction
	for _, d := range geometry.Directions {
		if free.ContainsStrictly(s.pos.Add(d.Delta())) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return geometry.None
	}

	if spider.Tracing() && s.rng.Float64() < chaseChance {
		target := nearestTrailPoint(spider, s.pos)
		best, bestDist := options[0], int64(-1)
		for _, d := range options {
			dist := manhattan(s.pos.Add(d.Delta()), target)
			if bestDist < 0 || dist < bestDist {
				best, bestDist = d, dist
			}
		}
		return best
	}
	return options[s.rng.IntN(len(options))]
}

// Step moves the snake by NextStep and returns the direction taken.
func (s *Snake) Step(field *Field, spider *Spider) geometry.Direction {
	d := s.NextStep(field, spider)
	s.pos = s.pos.Add(d.Delta())
	return d
}

func nearestTrailPoint(spider *Spider, from geometry.Point) geometry.Point {
	best := spider.Position()
	bestDist := manhattan(from, best)
	if trail := spider.Trail(); trail != nil {
		for _, p := range trail.Points() {
			if d := manhattan(from, p); d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best
}

func manhattan(a, b geometry.Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
