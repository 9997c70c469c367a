package main

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/Ko-stant/spider-field/internal/game"
	"github.com/Ko-stant/spider-field/internal/protocol"
	"github.com/Ko-stant/spider-field/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
	logger   Logger
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator, logger Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
		logger:   logger,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, tick uint64, payload any) {
	data, err := encodePatch(b.sequence.Next(), tick, eventType, payload)
	if err != nil {
		b.logger.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	b.hub.Broadcast(context.Background(), data)
}

func encodePatch(seq, tick uint64, eventType string, payload any) ([]byte, error) {
	return json.Marshal(protocol.PatchEnvelope{
		Sequence: seq,
		Tick:     tick,
		Type:     eventType,
		Payload:  payload,
	})
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

// publishTick broadcasts every patch a tick produced, in a fixed order.
func publishTick(b Broadcaster, res game.TickResult) {
	if res.SnakeMoved != nil {
		b.BroadcastEvent(protocol.PatchSnakeMoved, res.Tick, *res.SnakeMoved)
	}
	if res.SpiderMoved != nil {
		b.BroadcastEvent(protocol.PatchSpiderMoved, res.Tick, *res.SpiderMoved)
	}
	if res.FieldCut != nil {
		b.BroadcastEvent(protocol.PatchFieldCut, res.Tick, *res.FieldCut)
	}
	if res.StatusChanged != nil {
		b.BroadcastEvent(protocol.PatchStatusChanged, res.Tick, *res.StatusChanged)
	}
}
