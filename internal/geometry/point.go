package geometry

import "fmt"

// Point is a lattice coordinate. Y grows downwards, as on screen.
type Point struct {
	X int32
	Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Aligned reports whether a and b share a row or a column.
func Aligned(a, b Point) bool {
	return a.X == b.X || a.Y == b.Y
}

// Direction is a unit step along one axis, or no step at all.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four moving directions.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit vector of d. None maps to the origin.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "none", "stop":
		return None, true
	default:
		return None, false
	}
}
