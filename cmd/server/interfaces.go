package main

import (
	"github.com/Ko-stant/spider-field/internal/game"
	"github.com/Ko-stant/spider-field/internal/geometry"
	"github.com/Ko-stant/spider-field/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, tick uint64, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// GameEngine interface for core game logic
type GameEngine interface {
	HandleDirection(d geometry.Direction) error
	TogglePause() (game.Status, error)
	Restart() (protocol.Snapshot, error)
	Update() game.TickResult
	Snapshot() protocol.Snapshot
}
