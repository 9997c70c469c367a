package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ko-stant/spider-field/internal/geometry"
)

// ArenaCoordinate is a lattice point in an arena file.
type ArenaCoordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// ArenaSpider places the spider and its initial heading.
type ArenaSpider struct {
	ArenaCoordinate
	Direction string `json:"direction"`
}

// ArenaDefinition is the on-disk description of a playing field.
// Zero values fall back to the base config.
type ArenaDefinition struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions struct {
		Width  int32 `json:"width"`
		Height int32 `json:"height"`
	} `json:"dimensions"`
	Spider      *ArenaSpider     `json:"spider,omitempty"`
	Snake       *ArenaCoordinate `json:"snake,omitempty"`
	ClaimTarget float64          `json:"claimTarget,omitempty"`
	Seed        uint64           `json:"seed,omitempty"`
}

// LoadArenaFromFile loads an arena definition from a JSON file
func LoadArenaFromFile(filepath string) (*ArenaDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena file: %w", err)
	}

	var arena ArenaDefinition
	if err := json.Unmarshal(data, &arena); err != nil {
		return nil, fmt.Errorf("failed to parse arena JSON: %w", err)
	}

	return &arena, nil
}

// Apply overlays the arena onto base and validates the result.
func (a *ArenaDefinition) Apply(base Config) (Config, error) {
	cfg := base
	if a.Dimensions.Width != 0 {
		cfg.Width = a.Dimensions.Width
	}
	if a.Dimensions.Height != 0 {
		cfg.Height = a.Dimensions.Height
	}
	if a.Spider != nil {
		cfg.SpiderStart = geometry.Pt(a.Spider.X, a.Spider.Y)
		if a.Spider.Direction != "" {
			dir, ok := geometry.ParseDirection(a.Spider.Direction)
			if !ok {
				return base, fmt.Errorf("%w: arena %q: unknown spider direction %q", ErrInvalidConfig, a.ID, a.Spider.Direction)
			}
			cfg.SpiderDirection = dir
		}
	}
	if a.Snake != nil {
		cfg.SnakeStart = geometry.Pt(a.Snake.X, a.Snake.Y)
	}
	if a.ClaimTarget != 0 {
		cfg.ClaimTarget = a.ClaimTarget
	}
	if a.Seed != 0 {
		cfg.Seed = a.Seed
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("arena %q: %w", a.ID, err)
	}
	return cfg, nil
}
