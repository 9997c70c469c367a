package game

import (
	"fmt"
	"slices"

	"github.com/Ko-stant/spider-field/internal/geometry"
)

// Field is the playing area: the free polygon the snake lives in and the
// pieces already claimed from it.
type Field struct {
	width   int32
	height  int32
	free    geometry.Polygon
	claimed []geometry.Polygon
}

func NewField(width, height int32) (*Field, error) {
	free, err := geometry.PolygonFromPoints(
		geometry.Pt(0, 0),
		geometry.Pt(width, 0),
		geometry.Pt(width, height),
		geometry.Pt(0, height),
	)
	if err != nil {
		return nil, fmt.Errorf("field %dx%d: %w", width, height, err)
	}
	if free.Area() == 0 {
		return nil, fmt.Errorf("%w: field %dx%d has no area", ErrInvalidConfig, width, height)
	}
	return &Field{width: width, height: height, free: free}, nil
}

func (f *Field) Width() int32 {
	return f.width
}

func (f *Field) Height() int32 {
	return f.height
}

func (f *Field) FreePolygon() geometry.Polygon {
	return f.free
}

func (f *Field) CutPolygons() []geometry.Polygon {
	return slices.Clone(f.claimed)
}

// Cut replaces the free polygon and archives the piece cut from it.
func (f *Field) Cut(newFree, cut geometry.Polygon) {
	f.free = newFree
	f.claimed = append(f.claimed, cut)
}

func (f *Field) FreeArea() int64 {
	return f.free.Area()
}

func (f *Field) TotalArea() int64 {
	return int64(f.width) * int64(f.height)
}

func (f *Field) ClaimedArea() int64 {
	return f.TotalArea() - f.FreeArea()
}

// ClaimedPercent is the share of the field no longer free, from 0 to 100.
func (f *Field) ClaimedPercent() float64 {
	total := f.TotalArea()
	if total == 0 {
		return 0
	}
	return float64(f.ClaimedArea()) * 100 / float64(total)
}
