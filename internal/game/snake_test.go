package game

import (
	"math/rand/v2"
	"testing"

	"github.com/Ko-stant/spider-field/internal/geometry"
)

func TestSnake_StaysInside(t *testing.T) {
	f, err := NewField(50, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spider := NewSpider(geometry.Pt(0, 0), geometry.None)
	snake := NewSnake(geometry.Pt(1, 1), rand.New(rand.NewPCG(7, 11)))

	for i := range 200 {
		snake.Step(f, spider)
		if !f.FreePolygon().ContainsStrictly(snake.Position()) {
			t.Fatalf("step %d: snake left the interior at %v", i, snake.Position())
		}
	}
}

func TestSnake_BoxedIn(t *testing.T) {
	f, err := NewField(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snake := NewSnake(geometry.Pt(1, 1), rand.New(rand.NewPCG(1, 2)))
	if d := snake.Step(f, NewSpider(geometry.Pt(0, 0), geometry.None)); d != geometry.None {
		t.Errorf("expected no move, got %v", d)
	}
	if snake.Position() != geometry.Pt(1, 1) {
		t.Errorf("expected snake to stay at (1,1), got %v", snake.Position())
	}
}

func TestNearestTrailPoint(t *testing.T) {
	spider := NewSpider(geometry.Pt(20, 0), geometry.Down)
	spider.StartTrail()
	f, err := NewField(50, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 5 {
		spider.Update(f.FreePolygon())
	}

	if got := nearestTrailPoint(spider, geometry.Pt(20, 9)); got != geometry.Pt(20, 5) {
		t.Errorf("expected spider position (20,5), got %v", got)
	}
	if got := nearestTrailPoint(spider, geometry.Pt(20, -3)); got != geometry.Pt(20, 0) {
		t.Errorf("expected trail start (20,0), got %v", got)
	}
}
