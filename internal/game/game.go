package game

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/Ko-stant/spider-field/internal/geometry"
	"github.com/Ko-stant/spider-field/internal/protocol"
)

// Status is the phase of a game.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusLost    Status = "lost"
	StatusWon     Status = "won"
)

func (s Status) Over() bool {
	return s == StatusLost || s == StatusWon
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// TickResult holds the patches produced by one Update. Nil fields did
// not change.
type TickResult struct {
	Tick          uint64
	SnakeMoved    *protocol.SnakeMoved
	SpiderMoved   *protocol.SpiderMoved
	FieldCut      *protocol.FieldCut
	StatusChanged *protocol.StatusChanged
}

// Game runs the spider and the snake on a field. All methods are safe for
// concurrent use.
type Game struct {
	mu     sync.Mutex
	cfg    Config
	logger Logger
	rng    *rand.Rand

	field  *Field
	spider *Spider
	snake  *Snake
	status Status
	tick   uint64
}

func NewGame(cfg Config, logger Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	field, err := NewField(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return err
	}
	g.field = field
	g.spider = NewSpider(g.cfg.SpiderStart, g.cfg.SpiderDirection)
	g.snake = NewSnake(g.cfg.SnakeStart, g.rng)
	g.status = StatusRunning
	g.tick = 0
	return nil
}

// Restart discards the current round and starts over with the same config.
func (g *Game) Restart() (protocol.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.reset(); err != nil {
		return protocol.Snapshot{}, err
	}
	g.logger.Printf("game restarted on %dx%d field", g.cfg.Width, g.cfg.Height)
	return g.snapshotLocked(), nil
}

// HandleDirection steers the spider.
func (g *Game) HandleDirection(d geometry.Direction) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.Over() {
		return ErrGameOver
	}
	g.spider.SetDirection(d)
	return nil
}

// TogglePause switches between running and paused and returns the new
// status.
func (g *Game) TogglePause() (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	default:
		return g.status, ErrGameOver
	}
	return g.status, nil
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Update advances the game by one tick. Paused and finished games do not
// change.
func (g *Game) Update() TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusRunning {
		return TickResult{Tick: g.tick}
	}
	g.tick++
	result := TickResult{Tick: g.tick}

	before := g.snake.Position()
	g.snake.Step(g.field, g.spider)
	if after := g.snake.Position(); after != before {
		result.SnakeMoved = &protocol.SnakeMoved{Position: pointLite(after)}
	}
	if g.caught() {
		result.StatusChanged = g.finish(StatusLost, "snake caught the spider")
		return result
	}

	free := g.field.FreePolygon()
	if !free.ContainsStrictly(g.spider.Position()) {
		g.spider.StartTrail()
	}
	moved := g.spider.Update(free)
	if g.caught() {
		result.SpiderMoved = spiderMoved(g.spider)
		result.StatusChanged = g.finish(StatusLost, "spider ran into the snake")
		return result
	}

	if !free.ContainsStrictly(g.spider.Position()) {
		if trail, ok := g.spider.StopTrail(); ok {
			result.FieldCut = g.cut(free, trail)
		}
	}
	if moved || result.FieldCut != nil {
		result.SpiderMoved = spiderMoved(g.spider)
	}

	if g.field.ClaimedPercent() >= g.cfg.ClaimTarget {
		result.StatusChanged = g.finish(StatusWon, fmt.Sprintf("claimed %.1f%% of the field", g.field.ClaimedPercent()))
	}
	return result
}

// caught reports whether the snake sits on the spider or its trail.
func (g *Game) caught() bool {
	snake := g.snake.Position()
	if snake == g.spider.Position() {
		return true
	}
	trail := g.spider.Trail()
	return trail != nil && trail.Contains(snake)
}

// cut splits free along trail and keeps the piece holding the snake.
func (g *Game) cut(free geometry.Polygon, trail *geometry.Path) *protocol.FieldCut {
	a, b, ok := free.Cut(trail)
	if !ok {
		if trail.Len() > 2 {
			g.logger.Printf("tick %d: cut along %v rejected", g.tick, trail)
		}
		return nil
	}

	kept, claimed := b, a
	if a.ContainsStrictly(g.snake.Position()) {
		kept, claimed = a, b
	}
	g.field.Cut(kept, claimed)
	g.logger.Printf("tick %d: claimed %d cells, %.1f%% of field taken", g.tick, claimed.Area(), g.field.ClaimedPercent())

	return &protocol.FieldCut{
		Free:           polygonLite(kept),
		Claimed:        polygonLite(claimed),
		ClaimedPercent: g.field.ClaimedPercent(),
	}
}

func (g *Game) finish(status Status, reason string) *protocol.StatusChanged {
	g.status = status
	g.logger.Printf("tick %d: game %s: %s", g.tick, status, reason)
	return &protocol.StatusChanged{Status: string(status), Reason: reason}
}

// Snapshot returns the complete client view of the game.
func (g *Game) Snapshot() protocol.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() protocol.Snapshot {
	claimed := make([]protocol.PolygonLite, 0, len(g.field.claimed))
	for _, p := range g.field.claimed {
		claimed = append(claimed, polygonLite(p))
	}
	sm := spiderMoved(g.spider)
	return protocol.Snapshot{
		Tick:           g.tick,
		Status:         string(g.status),
		FieldWidth:     g.field.Width(),
		FieldHeight:    g.field.Height(),
		Free:           polygonLite(g.field.FreePolygon()),
		Claimed:        claimed,
		ClaimedPercent: g.field.ClaimedPercent(),
		ClaimTarget:    g.cfg.ClaimTarget,
		Spider: protocol.SpiderLite{
			Position:  sm.Position,
			Direction: sm.Direction,
			Tracing:   sm.Tracing,
			Trail:     sm.Trail,
		},
		Snake:           protocol.SnakeLite{Position: pointLite(g.snake.Position())},
		ProtocolVersion: protocol.ProtocolVersion,
	}
}

func spiderMoved(s *Spider) *protocol.SpiderMoved {
	out := &protocol.SpiderMoved{
		Position:  pointLite(s.Position()),
		Direction: s.Direction().String(),
		Tracing:   s.Tracing(),
	}
	if trail := s.Trail(); trail != nil {
		out.Trail = pointsLite(trail.Points())
	}
	return out
}

func pointLite(p geometry.Point) protocol.PointLite {
	return protocol.PointLite{X: p.X, Y: p.Y}
}

func pointsLite(points []geometry.Point) []protocol.PointLite {
	out := make([]protocol.PointLite, len(points))
	for i, p := range points {
		out[i] = pointLite(p)
	}
	return out
}

func polygonLite(p geometry.Polygon) protocol.PolygonLite {
	return protocol.PolygonLite{Vertices: pointsLite(p.Vertices()), Area: p.Area()}
}
