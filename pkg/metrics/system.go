package metrics

import (
	"context"
	"runtime"
	"time"
)

// RunSystemCollector refreshes the system gauges until ctx is cancelled.
func RunSystemCollector(ctx context.Context) {
	if !globalManager.enabled {
		return
	}
	ticker := time.NewTicker(globalManager.refreshInterval)
	defer ticker.Stop()
	for {
		collectSystem()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func collectSystem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	UpdateSystemMemoryUsage(ms.HeapAlloc)
	UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
