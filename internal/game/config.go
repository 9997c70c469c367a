package game

import (
	"fmt"

	"github.com/Ko-stant/spider-field/internal/geometry"
)

// Config describes a new game. ClaimTarget is a percentage of the field.
type Config struct {
	Width           int32
	Height          int32
	SpiderStart     geometry.Point
	SpiderDirection geometry.Direction
	SnakeStart      geometry.Point
	ClaimTarget     float64
	Seed            uint64
}

func DefaultConfig() Config {
	return Config{
		Width:           50,
		Height:          20,
		SpiderStart:     geometry.Pt(0, 0),
		SpiderDirection: geometry.Right,
		SnakeStart:      geometry.Pt(10, 10),
		ClaimTarget:     75,
		Seed:            1,
	}
}

func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: field %dx%d is too small", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ClaimTarget <= 0 || c.ClaimTarget > 100 {
		return fmt.Errorf("%w: claim target %.1f outside (0,100]", ErrInvalidConfig, c.ClaimTarget)
	}
	if !inField(c.SpiderStart, c.Width, c.Height) || onInterior(c.SpiderStart, c.Width, c.Height) {
		return fmt.Errorf("%w: spider start %v must lie on the field border", ErrInvalidConfig, c.SpiderStart)
	}
	if !onInterior(c.SnakeStart, c.Width, c.Height) {
		return fmt.Errorf("%w: snake start %v must lie inside the field", ErrInvalidConfig, c.SnakeStart)
	}
	return nil
}

func inField(p geometry.Point, w, h int32) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= w && p.Y <= h
}

func onInterior(p geometry.Point, w, h int32) bool {
	return p.X > 0 && p.Y > 0 && p.X < w && p.Y < h
}
