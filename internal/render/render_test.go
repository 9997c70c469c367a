package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/Ko-stant/spider-field/internal/protocol"
)

func testSnapshot() protocol.Snapshot {
	return protocol.Snapshot{
		FieldWidth:  40,
		FieldHeight: 10,
		Free: protocol.PolygonLite{
			Vertices: []protocol.PointLite{{X: 3, Y: 10}, {X: 3, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 10}},
			Area:     370,
		},
		Claimed: []protocol.PolygonLite{{
			Vertices: []protocol.PointLite{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 10}, {X: 0, Y: 10}},
			Area:     30,
		}},
		Spider: protocol.SpiderLite{Position: protocol.PointLite{X: 3, Y: 10}},
		Snake:  protocol.SnakeLite{Position: protocol.PointLite{X: 30, Y: 5}},
	}
}

func near(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) uint32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	const tol = 0x0300
	return d(ar, br) <= tol && d(ag, bg) <= tol && d(ab, bb) <= tol
}

func TestField_Size(t *testing.T) {
	opts := Options{Scale: 10, Margin: 5}
	img, err := Field(testSnapshot(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 410 || b.Dy() != 110 {
		t.Errorf("expected 410x110, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestField_Colors(t *testing.T) {
	// A 2px border lands exactly on pixel rows 5 and 6.
	opts := Options{Scale: 12, Margin: 6}
	img, err := Field(testSnapshot(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"margin", 1, 1, Background},
		{"claimed piece", 6 + 18, 6 + 60, ClaimedFill},
		{"free region", 6 + 240, 6 + 24, Background},
		{"snake", 6 + 360, 6 + 60, SnakeFill},
		{"spider", 6 + 36, 6 + 120, SpiderFill},
		{"top border", 6 + 240, 5, BorderStroke},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.At(tt.x, tt.y); !near(got, tt.want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestField_InvalidInput(t *testing.T) {
	if _, err := Field(testSnapshot(), Options{Scale: 0}); err == nil {
		t.Errorf("expected error for zero scale")
	}
	if _, err := Field(protocol.Snapshot{}, DefaultOptions()); err == nil {
		t.Errorf("expected error for empty field")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testSnapshot(), DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 40*12+16 || img.Bounds().Dy() != 10*12+16+captionHeight {
		t.Errorf("unexpected size %v", img.Bounds())
	}
}

func TestCaption(t *testing.T) {
	snap := testSnapshot()
	snap.Status = "running"
	snap.Tick = 1234
	snap.ClaimedPercent = 7.5
	snap.ClaimTarget = 75
	snap.FieldWidth = 100
	snap.FieldHeight = 20

	want := "running  tick 1,234  claimed 7.5% of 2,000 cells (target 75%)"
	if got := Caption(snap); got != want {
		t.Errorf("Caption = %q, want %q", got, want)
	}
}

func TestField_CaptionDrawsText(t *testing.T) {
	opts := Options{Scale: 10, Margin: 5, Caption: true}
	snap := testSnapshot()
	snap.Status = "running"
	img, err := Field(snap, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top := 10*10 + 2*5
	inked := 0
	for y := top; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if !near(img.At(x, y), Background) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Errorf("expected caption text below the field")
	}
}
