package geometry

import (
	"errors"
	"slices"
	"testing"
)

func mustPath(t *testing.T, points ...Point) *Path {
	t.Helper()
	p, err := PathFromPoints(points...)
	if err != nil {
		t.Fatalf("PathFromPoints(%v): %v", points, err)
	}
	return p
}

func assertPoints(t *testing.T, p *Path, want ...Point) {
	t.Helper()
	if got := p.Points(); !slices.Equal(got, want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
}

func TestPath_Append_RepeatIsNoOp(t *testing.T) {
	p := mustPath(t, Pt(0, 0), Pt(10, 0), Pt(10, 5))
	if err := p.Append(Pt(10, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPoints(t, p, Pt(0, 0), Pt(10, 0), Pt(10, 5))
}

func TestPath_Append_NotRectilinear(t *testing.T) {
	p := NewPathFrom(Pt(0, 0))
	err := p.Append(Pt(1, 1))
	if !errors.Is(err, ErrNotRectilinear) {
		t.Fatalf("expected ErrNotRectilinear, got %v", err)
	}
	assertPoints(t, p, Pt(0, 0))

	if _, err := PathFromPoints(Pt(0, 0), Pt(3, 0), Pt(4, 4)); !errors.Is(err, ErrNotRectilinear) {
		t.Errorf("expected PathFromPoints to wrap ErrNotRectilinear, got %v", err)
	}
}

func TestPath_Append_CollinearReplacesLast(t *testing.T) {
	p := mustPath(t, Pt(0, 0), Pt(1, 0))
	if err := p.Append(Pt(2, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPoints(t, p, Pt(0, 0), Pt(2, 0))

	// Stepping back along the last segment shortens it.
	if err := p.Append(Pt(1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPoints(t, p, Pt(0, 0), Pt(1, 0))
}

func TestPath_Append_LoopCollapse(t *testing.T) {
	tests := []struct {
		name  string
		start []Point
		add   Point
		want  []Point
	}{
		{
			name:  "closing a loop",
			start: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 1), Pt(8, 1)},
			add:   Pt(8, 0),
			want:  []Point{Pt(0, 0), Pt(8, 0)},
		},
		{
			name:  "crossing and extending",
			start: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 1), Pt(8, 1)},
			add:   Pt(8, -1),
			want:  []Point{Pt(0, 0), Pt(8, 0), Pt(8, -1)},
		},
		{
			name:  "longer loop",
			start: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 2), Pt(8, 2), Pt(8, 1)},
			add:   Pt(8, 0),
			want:  []Point{Pt(0, 0), Pt(8, 0)},
		},
		{
			name:  "first crossing wins",
			start: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(8, 10), Pt(8, 20), Pt(10, 20)},
			add:   Pt(10, -1),
			want:  []Point{Pt(0, 0), Pt(10, 0), Pt(10, -1)},
		},
		{
			name:  "overlap anchors at its start",
			start: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(8, 10), Pt(8, 20), Pt(10, 20)},
			add:   Pt(10, 5),
			want:  []Point{Pt(0, 0), Pt(10, 0), Pt(10, 5)},
		},
		{
			name:  "back onto the first point",
			start: []Point{Pt(0, 0), Pt(5, 0), Pt(5, 5), Pt(0, 5)},
			add:   Pt(0, 0),
			want:  []Point{Pt(0, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPath(t, tt.start...)
			if err := p.Append(tt.add); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPoints(t, p, tt.want...)
		})
	}
}

func TestPath_InsertionIndex(t *testing.T) {
	p := mustPath(t, Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(10, 10), Pt(10, 20), Pt(0, 20))
	tests := []struct {
		p    Point
		want int
		ok   bool
	}{
		{Pt(10, 15), 4, true},
		{Pt(0, 0), 1, true},
		{Pt(20, 0), 1, true},
		{Pt(0, 20), 5, true},
		{Pt(-10, 0), 0, false},
		{Pt(10, 1), 0, false},
	}
	for _, tt := range tests {
		got, ok := p.InsertionIndex(tt.p)
		if ok != tt.ok || got != tt.want {
			t.Errorf("InsertionIndex(%v) = %d, %v, want %d, %v", tt.p, got, ok, tt.want, tt.ok)
		}
		if p.Contains(tt.p) != tt.ok {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, !tt.ok, tt.ok)
		}
	}
}

func TestPath_Accessors(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() || p.Len() != 0 {
		t.Fatalf("expected empty path")
	}
	if _, ok := p.Last(); ok {
		t.Errorf("expected no last point on empty path")
	}

	p = mustPath(t, Pt(0, 0), Pt(0, 5), Pt(3, 5))
	if first, _ := p.First(); first != Pt(0, 0) {
		t.Errorf("First = %v", first)
	}
	if last, _ := p.Last(); last != Pt(3, 5) {
		t.Errorf("Last = %v", last)
	}
	if n := len(slices.Collect(p.Segments())); n != 2 {
		t.Errorf("expected 2 segments, got %d", n)
	}

	c := p.Clone()
	if err := c.Append(Pt(3, 9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("clone shares storage with original")
	}

	r, err := p.Reversed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPoints(t, r, Pt(3, 5), Pt(0, 5), Pt(0, 0))
}
