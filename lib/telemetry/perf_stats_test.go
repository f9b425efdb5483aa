package telemetry

import (
	"context"
	"runtime"
	"testing"
	"time"
)

func TestInstrumentPerfStatsStopsOnCancel(t *testing.T) {
	before := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	InstrumentPerfStats(ctx)
	cancel()

	deadline := time.Now().Add(time.Second * 2)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before {
			return
		}
		time.Sleep(time.Millisecond * 10)
	}
	t.Fatal("collection goroutine kept running after context cancellation")
}
