package geometry

import "testing"

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Pt(0, -1)},
		{Down, Pt(0, 1)},
		{Left, Pt(-1, 0)},
		{Right, Pt(1, 0)},
		{None, Pt(0, 0)},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirection_OppositeCancelsDelta(t *testing.T) {
	for _, d := range Directions {
		if sum := d.Delta().Add(d.Opposite().Delta()); sum != (Point{}) {
			t.Errorf("%v + opposite = %v, want origin", d, sum)
		}
	}
}

func TestParseDirection_RoundTrip(t *testing.T) {
	for _, d := range append([]Direction{None}, Directions...) {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Errorf("expected unknown direction to be rejected")
	}
}
