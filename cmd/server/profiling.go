package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/Ko-stant/spider-field/internal/game"
	"github.com/Ko-stant/spider-field/internal/geometry"
	"github.com/Ko-stant/spider-field/internal/protocol"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	go func() {
		log.Printf("Starting pprof server on :%s", config.Port)
		log.Printf("CPU profile: http://localhost:%s/debug/pprof/profile", config.Port)
		log.Printf("Heap profile: http://localhost:%s/debug/pprof/heap", config.Port)
		if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
			log.Printf("pprof server failed: %v", err)
		}
	}()
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv(getenv func(string) string) ProfilingConfig {
	port := getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}

// PerformanceMetrics holds performance tracking data
type PerformanceMetrics struct {
	mu             sync.Mutex
	TicksProcessed int64
	CutsApplied    int64
	Intents        int64
	AvgTickTime    time.Duration
	PeakGoroutines int
	PeakMemory     uint64
	StartTime      time.Time
}

func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{StartTime: time.Now()}
}

// TrackTick records one tick and whether it cut the field.
func (pm *PerformanceMetrics) TrackTick(duration time.Duration, cut bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.TicksProcessed++
	pm.AvgTickTime = (pm.AvgTickTime*time.Duration(pm.TicksProcessed-1) + duration) / time.Duration(pm.TicksProcessed)
	if cut {
		pm.CutsApplied++
	}
}

func (pm *PerformanceMetrics) TrackIntent() {
	pm.mu.Lock()
	pm.Intents++
	pm.mu.Unlock()
}

// UpdateSystemMetrics updates system-level metrics
func (pm *PerformanceMetrics) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	goroutines := runtime.NumGoroutine()

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if goroutines > pm.PeakGoroutines {
		pm.PeakGoroutines = goroutines
	}
	if m.Alloc > pm.PeakMemory {
		pm.PeakMemory = m.Alloc
	}
}

// LogMetrics logs current performance metrics
func (pm *PerformanceMetrics) LogMetrics(logger Logger) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	uptime := time.Since(pm.StartTime)
	logger.Printf("=== Performance Metrics ===")
	logger.Printf("Uptime: %v", uptime)
	logger.Printf("Ticks processed: %s", printer.Sprint(pm.TicksProcessed))
	logger.Printf("Cuts applied: %s", printer.Sprint(pm.CutsApplied))
	logger.Printf("Intents handled: %s", printer.Sprint(pm.Intents))
	logger.Printf("Average tick time: %v", pm.AvgTickTime)
	logger.Printf("Peak goroutines: %d", pm.PeakGoroutines)
	logger.Printf("Peak memory usage: %s bytes", printer.Sprint(pm.PeakMemory))
}

// InstrumentedGameEngine wraps GameEngine with performance tracking
type InstrumentedGameEngine struct {
	engine  GameEngine
	metrics *PerformanceMetrics
}

func NewInstrumentedGameEngine(engine GameEngine, metrics *PerformanceMetrics) *InstrumentedGameEngine {
	return &InstrumentedGameEngine{
		engine:  engine,
		metrics: metrics,
	}
}

func (ie *InstrumentedGameEngine) HandleDirection(d geometry.Direction) error {
	ie.metrics.TrackIntent()
	return ie.engine.HandleDirection(d)
}

func (ie *InstrumentedGameEngine) TogglePause() (game.Status, error) {
	ie.metrics.TrackIntent()
	return ie.engine.TogglePause()
}

func (ie *InstrumentedGameEngine) Restart() (protocol.Snapshot, error) {
	ie.metrics.TrackIntent()
	return ie.engine.Restart()
}

func (ie *InstrumentedGameEngine) Update() game.TickResult {
	start := time.Now()
	res := ie.engine.Update()
	ie.metrics.TrackTick(time.Since(start), res.FieldCut != nil)
	ie.metrics.UpdateSystemMetrics()
	return res
}

func (ie *InstrumentedGameEngine) Snapshot() protocol.Snapshot {
	return ie.engine.Snapshot()
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *PerformanceMetrics, logger Logger, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			metrics.LogMetrics(logger)
		}
	}()
}
