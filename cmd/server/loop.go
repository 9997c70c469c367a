package main

import (
	"context"
	"time"

	"github.com/Ko-stant/spider-field/internal/game"
)

// runTicker advances the engine every interval and broadcasts the result
// until ctx is cancelled.
func runTicker(ctx context.Context, engine GameEngine, broadcaster Broadcaster, logger Logger, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res := engine.Update()
			publishTick(broadcaster, res)
			if res.StatusChanged != nil && game.Status(res.StatusChanged.Status).Over() {
				snap := engine.Snapshot()
				logger.Printf("Game %s at tick %d: %s (claimed %.1f%%)",
					res.StatusChanged.Status, res.Tick, res.StatusChanged.Reason, snap.ClaimedPercent)
			}
		}
	}
}
