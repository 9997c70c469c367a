package main

import (
	"testing"

	"github.com/Ko-stant/spider-field/internal/game"
	"github.com/Ko-stant/spider-field/internal/geometry"
	"github.com/Ko-stant/spider-field/internal/protocol"
)

func TestGetProfilingConfigFromEnv(t *testing.T) {
	cfg := GetProfilingConfigFromEnv(envFrom(nil))
	if cfg.Enabled || cfg.Port != "42069" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}

	cfg = GetProfilingConfigFromEnv(envFrom(map[string]string{"ENABLE_PROFILING": "true", "PPROF_PORT": "6060"}))
	if !cfg.Enabled || cfg.Port != "6060" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestInstrumentedGameEngine_Tracks(t *testing.T) {
	engine := &MockGameEngine{
		status:   game.StatusRunning,
		snapshot: testSnapshot(),
		updates:  []game.TickResult{{Tick: 8, FieldCut: &protocol.FieldCut{}}, {Tick: 9}},
	}
	metrics := NewPerformanceMetrics()
	ie := NewInstrumentedGameEngine(engine, metrics)

	ie.Update()
	ie.Update()
	if err := ie.HandleDirection(geometry.Up); err != nil {
		t.Fatalf("HandleDirection: %v", err)
	}
	if _, err := ie.TogglePause(); err != nil {
		t.Fatalf("TogglePause: %v", err)
	}

	if metrics.TicksProcessed != 2 || metrics.CutsApplied != 1 || metrics.Intents != 2 {
		t.Errorf("Unexpected metrics: ticks %d cuts %d intents %d", metrics.TicksProcessed, metrics.CutsApplied, metrics.Intents)
	}
	if metrics.PeakGoroutines == 0 {
		t.Errorf("Expected system metrics to be sampled")
	}

	logger := &MockLogger{}
	metrics.LogMetrics(logger)
	if len(logger.messages) == 0 {
		t.Errorf("Expected metrics to be logged")
	}
}
